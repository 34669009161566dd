package utils

import (
	"registro-service/internal/pkg/exceptions"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateStruct(request interface{}) error {
	err := validate.Struct(request)
	if err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}
