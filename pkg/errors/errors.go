package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Tipos de erro comuns
var (
	ErrNotFound      = errors.New("recurso não encontrado")
	ErrDataIntegrity = errors.New("violação de integridade de dados")
	ErrValidation    = errors.New("erro de validação")
	ErrUnauthorized  = errors.New("não autorizado")
	ErrInternal      = errors.New("erro interno do servidor")
)

// FieldMessage descreve a falha de validação de um campo específico.
type FieldMessage struct {
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

// APIError representa um erro da API com o status HTTP e o rótulo curto que
// serão usados no payload uniforme de erro.
type APIError struct {
	Code        int            `json:"-"`
	Label       string         `json:"error"`
	Message     string         `json:"message"`
	Fields      []FieldMessage `json:"errors,omitempty"`
	OriginalErr error          `json:"-"`
}

// Error implementa a interface error.
func (e *APIError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalErr)
	}
	return e.Message
}

// Unwrap permite usar errors.Is e errors.As.
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// New cria um novo APIError.
func New(code int, label, message string, err error) *APIError {
	return &APIError{
		Code:        code,
		Label:       label,
		Message:     message,
		OriginalErr: err,
	}
}

// NotFound cria um erro 404 para uma entidade ausente.
func NotFound(message string) *APIError {
	if message == "" {
		message = "Objeto não encontrado"
	}
	return New(http.StatusNotFound, "Não encontrado", message, ErrNotFound)
}

// DataIntegrity cria o erro de colisão de chave natural ou de exclusão
// bloqueada por referências existentes.
func DataIntegrity(message string) *APIError {
	return New(http.StatusBadRequest, "Violação de dados", message, ErrDataIntegrity)
}

// Validation cria o erro de validação de campos, com uma entrada por campo
// inválido.
func Validation(message string, fields []FieldMessage) *APIError {
	if message == "" {
		message = "Erro na validação dos campos"
	}
	e := New(http.StatusBadRequest, "Erro de validação", message, ErrValidation)
	e.Fields = fields
	return e
}

// Unauthorized cria um erro 401.
func Unauthorized(message string) *APIError {
	if message == "" {
		message = "Autenticação necessária"
	}
	return New(http.StatusUnauthorized, "Não autorizado", message, ErrUnauthorized)
}

// InternalServer cria um erro 500.
func InternalServer(message string, err error) *APIError {
	if message == "" {
		message = "Erro interno do servidor"
	}
	return New(http.StatusInternalServerError, "Erro interno", message, err)
}

// StandardError é o payload uniforme de erro da API.
type StandardError struct {
	Timestamp int64  `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
}

// ValidationError estende StandardError com a lista de campos inválidos.
type ValidationError struct {
	StandardError
	Errors []FieldMessage `json:"errors"`
}
