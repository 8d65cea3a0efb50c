package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostFormRequiresText(t *testing.T) {
	errs := PostForm{}.Validate()
	assert.Contains(t, errs, "text")
}

func TestPostFormValid(t *testing.T) {
	gid := uint(1)
	assert.Nil(t, PostForm{Text: "тест", GroupID: &gid}.Validate())
	assert.Nil(t, PostForm{Text: "тест"}.Validate(), "group is optional")
}

func TestCommentFormRequiresText(t *testing.T) {
	assert.Contains(t, CommentForm{}.Validate(), "text")
	assert.Nil(t, CommentForm{Text: "Тестовый комментарий"}.Validate())
}

func TestPostFormFieldMetadata(t *testing.T) {
	fields := PostForm{}.Fields()
	assert.Equal(t, "Текст поста", fields["text"].Label)
	assert.Equal(t, "Напишите свою информацию", fields["text"].HelpText)
	assert.Equal(t, "Название группы", fields["group"].Label)
	assert.Equal(t, "Напишите название группы", fields["group"].HelpText)
}

func TestCommentFormFieldMetadata(t *testing.T) {
	fields := CommentForm{}.Fields()
	assert.Equal(t, "Текст комментария", fields["text"].Label)
	assert.Equal(t, "Напишите свой комментарий", fields["text"].HelpText)
}
