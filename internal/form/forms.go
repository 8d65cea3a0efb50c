// Package form holds the request-bound forms: validation plus the
// human-readable field metadata the UI renders next to each input.
package form

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// report errors under the submitted field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Field carries the label / help text shown for one form field.
type Field struct {
	Label    string `json:"label"`
	HelpText string `json:"help_text"`
}

// PostForm binds the post create/edit submission. The image part is
// multipart and handled outside the form binding.
type PostForm struct {
	Text    string `form:"text" json:"text" validate:"required"`
	GroupID *uint  `form:"group" json:"group"`
}

func (PostForm) Fields() map[string]Field {
	return map[string]Field{
		"text":  {Label: "Текст поста", HelpText: "Напишите свою информацию"},
		"group": {Label: "Название группы", HelpText: "Напишите название группы"},
		"image": {Label: "Картинка", HelpText: ""},
	}
}

func (f PostForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f))
}

// CommentForm binds a comment submission.
type CommentForm struct {
	Text string `form:"text" json:"text" validate:"required"`
}

func (CommentForm) Fields() map[string]Field {
	return map[string]Field{
		"text": {Label: "Текст комментария", HelpText: "Напишите свой комментарий"},
	}
}

func (f CommentForm) Validate() map[string]string {
	return fieldErrors(validate.Struct(f))
}

// fieldErrors flattens validator errors into field -> message.
func fieldErrors(err error) map[string]string {
	if err == nil {
		return nil
	}
	out := map[string]string{}
	var verr validator.ValidationErrors
	if errors.As(err, &verr) {
		for _, fe := range verr {
			switch fe.Tag() {
			case "required":
				out[fe.Field()] = "обязательное поле"
			default:
				out[fe.Field()] = fe.Tag()
			}
		}
		return out
	}
	out["__all__"] = err.Error()
	return out
}
