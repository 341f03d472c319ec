package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT e tokens
	ErrInvalidSigningMethod = fmt.Errorf("método de assinatura do token inválido")
	ErrInvalidToken         = fmt.Errorf("token inválido")
	ErrTokenExpired         = fmt.Errorf("token expirado")
	ErrTokenIsNotAccess     = fmt.Errorf("o token informado não é um token de acesso")
	ErrTokenIsNotRefresh    = fmt.Errorf("o token informado não é um refresh token")

	// Autenticação
	ErrEmptyAuthHeader    = fmt.Errorf("cabeçalho de autorização ausente")
	ErrInvalidAuthHeader  = fmt.Errorf("formato do cabeçalho de autorização inválido")
	ErrInvalidCredentials = fmt.Errorf("usuário ou senha incorretos")

	// Gerais
	ErrNotFound   = fmt.Errorf("registro não encontrado")
	ErrBadRequest = fmt.Errorf("requisição inválida")
)

// HttpError carrega o status HTTP junto da mensagem exibida ao usuário.
// O erro técnico original fica em Err, apenas para os logs.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

// ValidationError indica que um campo obrigatório está ausente ou malformado
// em uma operação de criação. O nome do campo sempre acompanha o erro.
type ValidationError struct {
	Campo string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("campo obrigatório ausente ou inválido: %s", e.Campo)
}

func NewValidationError(campo string) error {
	return &ValidationError{Campo: campo}
}

// PersistenceError indica falha de leitura ou escrita no armazenamento.
// A coleção em memória NÃO é revertida quando a escrita falha.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("falha de persistência (%s): %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewPersistenceError(op string, err error) error {
	return &PersistenceError{Op: op, Err: err}
}

// SerializationError indica falha ao serializar o snapshot de exportação.
// É fatal apenas para a chamada de exportação em questão.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("falha ao serializar o relatório: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

func NewSerializationError(err error) error {
	return &SerializationError{Err: err}
}

// StatusFromError traduz a taxonomia de erros em status HTTP.
func StatusFromError(err error) int {
	switch err {
	case ErrInvalidCredentials, ErrEmptyAuthHeader, ErrInvalidAuthHeader,
		ErrInvalidToken, ErrTokenExpired, ErrTokenIsNotAccess, ErrTokenIsNotRefresh:
		return http.StatusUnauthorized
	case ErrNotFound:
		return http.StatusNotFound
	case ErrBadRequest:
		return http.StatusBadRequest
	}

	switch err.(type) {
	case *ValidationError:
		return http.StatusBadRequest
	case *PersistenceError, *SerializationError:
		return http.StatusInternalServerError
	}

	return http.StatusInternalServerError
}
