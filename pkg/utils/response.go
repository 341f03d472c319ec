package utils

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "sistema-ti/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Body    interface{} `json:"body,omitempty"`
	Message string      `json:"message"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Body:    body,
		Message: message,
	})
}

// ErrorResponse converte qualquer erro da aplicação na resposta padrão.
// Para HttpError usamos apenas a mensagem do usuário; detalhes técnicos vão ao log.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := apperrors.StatusFromError(err)
	message := err.Error()

	if httpErr, ok := err.(*apperrors.HttpError); ok {
		code = httpErr.Code
		message = httpErr.Message
		if httpErr.Err != nil && logger != nil {
			logger.Error("erro interno", zap.Error(httpErr.Err), zap.Any("details", httpErr.Details))
		}
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Body:    struct{}{},
		Message: message,
	})
}
