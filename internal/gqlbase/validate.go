package gqlbase

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a response that does not match the shape its
// generated type expects.
type ValidationError struct {
	Type   string
	Fields []string
	Err    error
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("invalid %s: %v", e.Type, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Type, strings.Join(e.Fields, "; "))
}

func (e *ValidationError) Unwrap() error { return e.Err }

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks v against its validate struct tags.
func Validate(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	name := fmt.Sprintf("%T", v)
	if t := reflect.TypeOf(v); t != nil {
		for t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		name = t.Name()
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Type: name, Err: err}
	}
	ve := &ValidationError{Type: name, Err: err}
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			ve.Fields = append(ve.Fields, fmt.Sprintf("%s failed %s=%s (got %v)", fe.Namespace(), fe.Tag(), fe.Param(), fe.Value()))
		} else {
			ve.Fields = append(ve.Fields, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
		}
	}
	return ve
}
