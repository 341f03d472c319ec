package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "sistema-ti/pkg/errors"
)

// CustomValidator adapta o validator para a interface echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

// Validate devolve um HttpError 400 com o primeiro campo inválido encontrado.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return apperrors.NewHttpError(
				http.StatusBadRequest,
				"campo obrigatório ausente ou inválido: "+errs[0].Field(),
				err,
				map[string]interface{}{"campo": errs[0].Field(), "regra": errs[0].Tag()},
			)
		}
		return apperrors.NewHttpError(http.StatusBadRequest, "dados inválidos no corpo da requisição", err, nil)
	}
	return nil
}
