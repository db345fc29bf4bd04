package validator

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/recreation-microservice/internal/pkg/errors"
)

var (
	validate *validator.Validate

	recResourceIDPattern = regexp.MustCompile(`^REC\d+$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("rec_resource_id", func(fl validator.FieldLevel) bool {
		return IsRecResourceID(fl.Field().String())
	})
}

// Validate - валидация структуры, ошибки приводятся к AppError
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ErrInvalidRequest
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Tag()
	}
	return apperrors.ErrInvalidRequest.WithDetails(details)
}

// IsRecResourceID проверяет формат идентификатора (REC203239)
func IsRecResourceID(id string) bool {
	return recResourceIDPattern.MatchString(id)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
