package handler

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var localPhone = regexp.MustCompile(`^0[0-9]{9}$`)

// newValidator регистрирует правила, которых нет в validator из коробки.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return localPhone.MatchString(fl.Field().String())
	})
	return v
}
