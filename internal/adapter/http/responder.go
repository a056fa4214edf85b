package http

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
)

var validatorSetup sync.Once

// setupValidator faz o validador do gin reportar os nomes de campo do JSON
// em vez dos nomes de campo do Go.
func setupValidator() {
	validatorSetup.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
}

// respondError escreve o payload uniforme de erro. Erros que não são
// APIError viram 500 genérico, sem vazar detalhes internos.
func respondError(c *gin.Context, err error) {
	var apiErr *apierrors.APIError
	if !errors.As(err, &apiErr) {
		apiErr = apierrors.InternalServer("", err)
	}

	std := apierrors.StandardError{
		Timestamp: time.Now().UnixMilli(),
		Status:    apiErr.Code,
		Error:     apiErr.Label,
		Message:   apiErr.Message,
		Path:      c.Request.URL.Path,
	}

	if len(apiErr.Fields) > 0 {
		c.JSON(apiErr.Code, apierrors.ValidationError{
			StandardError: std,
			Errors:        apiErr.Fields,
		})
		return
	}

	c.JSON(apiErr.Code, std)
}

// bindJSON decodifica e valida o corpo da requisição. Em caso de falha,
// responde o erro de validação com uma entrada por campo inválido e retorna
// false.
func bindJSON(c *gin.Context, dest interface{}) bool {
	setupValidator()

	if err := c.ShouldBindJSON(dest); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			respondError(c, apierrors.Validation("", fieldMessages(verrs)))
			return false
		}
		respondError(c, apierrors.Validation("Corpo da requisição inválido", nil))
		return false
	}
	return true
}

// fieldMessages converte as falhas do validador em mensagens por campo.
func fieldMessages(verrs validator.ValidationErrors) []apierrors.FieldMessage {
	messages := make([]apierrors.FieldMessage, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, apierrors.FieldMessage{
			FieldName: fe.Field(),
			Message:   mensagemValidacao(fe),
		})
	}
	return messages
}

func mensagemValidacao(fe validator.FieldError) string {
	campo := strings.ToUpper(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é requerido", campo)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um email válido", campo)
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um dos valores: %s", campo, fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s excede o tamanho máximo de %s", campo, fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido", campo)
	}
}

// parseIDParam extrai o parâmetro de rota :id. Em caso de falha, responde o
// erro de validação e retorna false.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, apierrors.Validation("Parâmetro id inválido", []apierrors.FieldMessage{
			{FieldName: "id", Message: "O parâmetro id deve ser um número inteiro"},
		}))
		return 0, false
	}
	return uint(id), true
}
