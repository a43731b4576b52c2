// Package validation wraps go-playground/validator with the storefront's
// localized messages.
package validation

import (
	"errors"
	"strings"

	"uniformshop-be/internal/apperr"

	"github.com/go-playground/validator/v10"
)

const fallbackMessage = "ข้อมูลไม่ถูกต้อง"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Messages maps "Field.tag" (e.g. "StudentName.notblank") to a user-facing message.
type Messages map[string]string

// Struct validates s and converts the first failing rule into a validation
// error carrying the matching message.
func Struct(op string, s any, msgs Messages) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperr.Validation(op, fallbackMessage)
	}

	fe := verrs[0]
	if msg, ok := msgs[fe.StructField()+"."+fe.Tag()]; ok {
		return apperr.Validation(op, msg)
	}
	if msg, ok := msgs[fe.StructField()]; ok {
		return apperr.Validation(op, msg)
	}
	return apperr.Validation(op, fallbackMessage+": "+fe.Field())
}
