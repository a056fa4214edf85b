package http

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/turmab/helpdesk/internal/app/auth"
	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/mocks"
	"github.com/turmab/helpdesk/internal/testutils"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
	"github.com/turmab/helpdesk/pkg/security"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T, repo *mocks.MockPessoaRepository) *auth.Service {
	logger := testutils.TestLogger(t)
	km, err := security.NewKeyManager([]byte("0123456789abcdef0123456789abcdef"), time.Hour, logger)
	require.NoError(t, err)
	return auth.NewService(repo, km, logger)
}

func pessoaComSenha(t *testing.T, senha string) *model.Pessoa {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Pessoa{
		ID:     1,
		Nome:   "Bill Gates",
		CPF:    "80527954780",
		Email:  "bill@mail.com",
		Senha:  string(hash),
		Perfis: model.Perfis{model.PerfilAdmin, model.PerfilTecnico},
	}
}

func TestLoginHandlerSucesso(t *testing.T) {
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(pessoaComSenha(t, "123"), nil)

	router := testutils.SetupTestRouter(t)
	handler := NewAuthHandler(newAuthService(t, repo), testutils.TestLogger(t))
	router.POST("/login", handler.Login)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/login",
		map[string]string{"email": "bill@mail.com", "senha": "123"}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var body loginResponse
	testutils.ParseResponse(t, resp, &body)
	assert.NotEmpty(t, body.Token)
	assert.True(t, strings.HasPrefix(resp.Header().Get("Authorization"), "Bearer "))
}

func TestLoginHandlerCredenciaisInvalidas(t *testing.T) {
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(pessoaComSenha(t, "123"), nil)

	router := testutils.SetupTestRouter(t)
	handler := NewAuthHandler(newAuthService(t, repo), testutils.TestLogger(t))
	router.POST("/login", handler.Login)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/login",
		map[string]string{"email": "bill@mail.com", "senha": "errada"}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	var body apierrors.StandardError
	testutils.ParseResponse(t, resp, &body)
	assert.Equal(t, http.StatusUnauthorized, body.Status)
	assert.Equal(t, "Não autorizado", body.Error)
	assert.Equal(t, "Email ou senha inválidos", body.Message)
	assert.Equal(t, "/login", body.Path)
	assert.NotZero(t, body.Timestamp)
}

func TestLoginHandlerCamposFaltando(t *testing.T) {
	router := testutils.SetupTestRouter(t)
	handler := NewAuthHandler(newAuthService(t, new(mocks.MockPessoaRepository)), testutils.TestLogger(t))
	router.POST("/login", handler.Login)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/login",
		map[string]string{"email": "bill@mail.com"}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	var body apierrors.ValidationError
	testutils.ParseResponse(t, resp, &body)
	assert.Equal(t, "Erro de validação", body.Error)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "senha", body.Errors[0].FieldName)
}

func TestLoginHandlerEmailInvalido(t *testing.T) {
	router := testutils.SetupTestRouter(t)
	handler := NewAuthHandler(newAuthService(t, new(mocks.MockPessoaRepository)), testutils.TestLogger(t))
	router.POST("/login", handler.Login)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/login",
		map[string]string{"email": "nao-e-email", "senha": "123"}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	var body apierrors.ValidationError
	testutils.ParseResponse(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "email", body.Errors[0].FieldName)
}
