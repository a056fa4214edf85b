package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/app/auth"
	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/pkg/errors"
	"go.uber.org/zap"
)

// PessoaKey é a chave do contexto gin onde o guard armazena a pessoa
// autenticada.
const PessoaKey = "pessoa"

// AuthMiddleware é o guard de acesso: valida o bearer token de cada
// requisição e resolve a identidade do chamador.
type AuthMiddleware struct {
	authService *auth.Service
	publicPaths []string
	logger      *zap.Logger
}

// NewAuthMiddleware cria uma nova instância do middleware de autenticação.
// publicPaths é a allow-list de prefixos de rota que dispensam token.
func NewAuthMiddleware(authService *auth.Service, publicPaths []string, logger *zap.Logger) *AuthMiddleware {
	if len(publicPaths) == 0 {
		publicPaths = []string{"/login", "/health", "/metrics"}
	}
	return &AuthMiddleware{
		authService: authService,
		publicPaths: publicPaths,
		logger:      logger,
	}
}

// Authenticate verifica se o chamador apresentou um token válido. Os perfis
// não vêm do token: a pessoa é resolvida no banco a cada requisição, então
// revogação de perfil tem efeito imediato.
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	if m.isPublicRoute(c.Request.URL.Path) {
		c.Next()
		return
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		m.abortUnauthorized(c, "Authorization header não fornecido")
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		m.abortUnauthorized(c, "Formato inválido do token")
		return
	}

	pessoa, err := m.authService.ValidateToken(c.Request.Context(), tokenString)
	if err != nil {
		m.abortUnauthorized(c, "Token inválido ou expirado")
		return
	}

	c.Set(PessoaKey, pessoa)
	c.Next()
}

// AuthenticateAdmin verifica se o chamador carrega o perfil ADMIN.
func (m *AuthMiddleware) AuthenticateAdmin(c *gin.Context) {
	m.Authenticate(c)

	if c.IsAborted() {
		return
	}

	pessoa := PessoaFromContext(c)
	if pessoa == nil || !pessoa.TemPerfil(model.PerfilAdmin) {
		c.AbortWithStatusJSON(http.StatusForbidden, errors.StandardError{
			Timestamp: time.Now().UnixMilli(),
			Status:    http.StatusForbidden,
			Error:     "Acesso negado",
			Message:   "Permissão de administrador necessária",
			Path:      c.Request.URL.Path,
		})
		return
	}

	c.Next()
}

// PessoaFromContext recupera a pessoa autenticada do contexto gin.
func PessoaFromContext(c *gin.Context) *model.Pessoa {
	value, exists := c.Get(PessoaKey)
	if !exists {
		return nil
	}
	pessoa, ok := value.(*model.Pessoa)
	if !ok {
		return nil
	}
	return pessoa
}

func (m *AuthMiddleware) isPublicRoute(path string) bool {
	for _, publicPath := range m.publicPaths {
		if strings.HasPrefix(path, publicPath) {
			return true
		}
	}
	return false
}

func (m *AuthMiddleware) abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, errors.StandardError{
		Timestamp: time.Now().UnixMilli(),
		Status:    http.StatusUnauthorized,
		Error:     "Não autorizado",
		Message:   message,
		Path:      c.Request.URL.Path,
	})
}
