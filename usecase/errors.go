package usecase

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"match-chat-api/apperr"
)

func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		first := validationErrors[0]
		return apperr.BadRequest(first.Field() + " failed on " + first.Tag())
	}
	return apperr.BadRequest(err.Error())
}

// notFound maps a missing row to the NotFound kind and leaves other errors alone.
func notFound(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(message)
	}
	return err
}
