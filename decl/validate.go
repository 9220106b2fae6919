package decl

import (
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/dhamidi/kpoet/kotlin"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil functions.
	_ = v.RegisterValidation("kotlin_type", func(fl validator.FieldLevel) bool {
		_, err := kotlin.ParseTypeName(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("kotlin_modifier", func(fl validator.FieldLevel) bool {
		_, ok := kotlin.ParseModifier(fl.Field().String())
		return ok
	})
	return v
}

// FieldError is one failed document constraint.
type FieldError struct {
	// Path is the document path, e.g. types[0].properties[1].type.
	Path  string
	Tag   string
	Value any
}

func (e FieldError) Error() string {
	switch e.Tag {
	case "required", "required_without":
		return e.Path + " is required"
	case "kotlin_type":
		return e.Path + ": " + quote(e.Value) + " is not a type"
	case "kotlin_modifier":
		return e.Path + ": " + quote(e.Value) + " is not a modifier"
	case "excluded_with":
		return e.Path + " cannot be combined with a delegate"
	}
	return e.Path + " fails " + e.Tag
}

func quote(v any) string {
	if s, ok := v.(string); ok {
		return `"` + s + `"`
	}
	return "value"
}

// DocumentError lists every constraint a document violates.
type DocumentError struct {
	Fields []FieldError
}

func (e *DocumentError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Error()
	}
	return "invalid document: " + strings.Join(msgs, "; ")
}

// Validate checks the document against its schema.
func Validate(doc *Document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return errors.Wrap(err, "validate document")
	}
	out := &DocumentError{}
	for _, fe := range ve {
		out.Fields = append(out.Fields, FieldError{
			Path:  strings.TrimPrefix(fe.Namespace(), "Document."),
			Tag:   fe.Tag(),
			Value: fe.Value(),
		})
	}
	return errors.WithStack(out)
}
