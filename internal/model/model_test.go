package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostStringTruncatesToFifteenRunes(t *testing.T) {
	p := Post{Text: "Очень длинный тестовый пост про всё на свете"}
	assert.Equal(t, "Очень длинный т", p.String())
	assert.Len(t, []rune(p.String()), 15)
}

func TestPostStringShortTextUnchanged(t *testing.T) {
	p := Post{Text: "Тестовый пост"}
	assert.Equal(t, "Тестовый пост", p.String())
}

func TestGroupStringIsTitle(t *testing.T) {
	g := Group{Title: "Тестовая группа", Slug: "test-slug"}
	assert.Equal(t, "Тестовая группа", g.String())
}
