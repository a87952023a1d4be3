package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	appErr "github.com/megareality/estate/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateInput turns validator failures into a single CodeInvalid error.
func validateInput(in any) error {
	return invalidInput(validate.Struct(in))
}

// validatePatch applies the create rules to the pointer fields a partial update supplies.
func validatePatch(in any) error {
	v := reflect.Indirect(reflect.ValueOf(in))
	var supplied []string
	for i := 0; i < v.NumField(); i++ {
		if f := v.Field(i); f.Kind() == reflect.Pointer && !f.IsNil() {
			supplied = append(supplied, v.Type().Field(i).Name)
		}
	}
	if len(supplied) == 0 {
		return nil
	}
	return invalidInput(validate.StructPartial(in, supplied...))
}

func invalidInput(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid input")
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required", "notblank":
			msgs = append(msgs, fe.Field()+" is required")
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param()))
		case "email":
			msgs = append(msgs, fe.Field()+" must be a valid email")
		default:
			msgs = append(msgs, fe.Field()+" is invalid")
		}
	}
	return appErr.New(appErr.CodeInvalid, strings.Join(msgs, "; "))
}
