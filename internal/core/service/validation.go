package service

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/shs/account-service/internal/core/domain"
)

// fieldErrors maps input struct fields to their client error. Validator
// reports fields in declaration order: username, password, display name.
var fieldErrors = map[string]error{
	"Username":    domain.ErrInvalidUsername,
	"Password":    domain.ErrInvalidPassword,
	"DisplayName": domain.ErrInvalidDisplayName,
}

// validateInput returns the error of the first offending field.
func (s *AccountService) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		if mapped, ok := fieldErrors[ve[0].StructField()]; ok {
			return mapped
		}
	}
	return err
}
