package impl

import (
	"github.com/go-playground/validator/v10"

	domainerrors "starfund/internal/domain/errors"
)

var validate = validator.New()

// validateInput checks an input DTO before any repository call, so malformed
// input never reaches the backend.
func validateInput(input any) error {
	if err := validate.Struct(input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
