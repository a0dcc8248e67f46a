package validation

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/reviewhub/reviewhub-backend/internal/domain/entities"
	"github.com/reviewhub/reviewhub-backend/internal/domain/valueobjects"
)

// Register instala as validações customizadas no binding do Gin.
// Tags: username (formato + "me" reservado), slug, notfuture (ano de
// lançamento não pode estar no futuro).
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected gin validator engine")
	}

	if err := v.RegisterValidation("username", validUsername); err != nil {
		return err
	}
	if err := v.RegisterValidation("slug", validSlug); err != nil {
		return err
	}
	if err := v.RegisterValidation("notfuture", notFutureYear); err != nil {
		return err
	}
	return nil
}

func validUsername(fl validator.FieldLevel) bool {
	return entities.ValidateUsername(fl.Field().String()) == nil
}

func validSlug(fl validator.FieldLevel) bool {
	_, err := valueobjects.NewSlug(fl.Field().String())
	return err == nil
}

func notFutureYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year > 0 && year <= int64(time.Now().Year())
}
