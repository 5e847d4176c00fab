package utils

import (
	"wellness-wizard/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("eye", validateEye)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateEye(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.EyeLeft || value == constvars.EyeRight
}
