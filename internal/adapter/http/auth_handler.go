package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/app/auth"
	"go.uber.org/zap"
)

// AuthHandler expõe o endpoint de login.
type AuthHandler struct {
	service *auth.Service
	logger  *zap.Logger
}

// NewAuthHandler cria o handler de autenticação.
func NewAuthHandler(service *auth.Service, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

type loginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login autentica por email e senha. O token vai no corpo e também no
// cabeçalho Authorization, que o CORS expõe para clientes de navegador.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, loginResponse{Token: token})
}
