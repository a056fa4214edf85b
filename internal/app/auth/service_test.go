package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/mocks"
	"github.com/turmab/helpdesk/pkg/security"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, repo *mocks.MockPessoaRepository) *Service {
	logger := zaptest.NewLogger(t)
	km, err := security.NewKeyManager([]byte("0123456789abcdef0123456789abcdef"), time.Hour, logger)
	require.NoError(t, err)
	return NewService(repo, km, logger)
}

func pessoaComSenha(t *testing.T, senha string) *model.Pessoa {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	return &model.Pessoa{
		ID:     1,
		Nome:   "Bill Gates",
		Email:  "bill@mail.com",
		Senha:  string(hash),
		Perfis: model.Perfis{model.PerfilAdmin, model.PerfilTecnico},
	}
}

func TestLoginSucesso(t *testing.T) {
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(pessoaComSenha(t, "123"), nil)

	service := newTestService(t, repo)

	token, err := service.Login(context.Background(), "bill@mail.com", "123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginSenhaErrada(t *testing.T) {
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(pessoaComSenha(t, "123"), nil)

	service := newTestService(t, repo)

	_, err := service.Login(context.Background(), "bill@mail.com", "errada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), MensagemCredenciaisInvalidas)
}

func TestLoginEmailDesconhecido(t *testing.T) {
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "ninguem@mail.com").Return(nil, nil)

	service := newTestService(t, repo)

	_, err := service.Login(context.Background(), "ninguem@mail.com", "123")
	require.Error(t, err)
	// Mesma mensagem da senha errada: não revelar quais emails existem
	assert.Contains(t, err.Error(), MensagemCredenciaisInvalidas)
}

func TestValidateToken(t *testing.T) {
	pessoa := pessoaComSenha(t, "123")
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(pessoa, nil)

	service := newTestService(t, repo)

	token, err := service.Login(context.Background(), "bill@mail.com", "123")
	require.NoError(t, err)

	resolvido, err := service.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, pessoa.Email, resolvido.Email)
	assert.True(t, resolvido.TemPerfil(model.PerfilAdmin))
}

func TestValidateTokenPessoaRemovida(t *testing.T) {
	pessoa := pessoaComSenha(t, "123")
	repo := new(mocks.MockPessoaRepository)
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(pessoa, nil).Once()
	repo.On("FindByEmail", mock.Anything, "bill@mail.com").Return(nil, nil)

	service := newTestService(t, repo)

	token, err := service.Login(context.Background(), "bill@mail.com", "123")
	require.NoError(t, err)

	_, err = service.ValidateToken(context.Background(), token)
	require.Error(t, err)
}

func TestValidateTokenInvalido(t *testing.T) {
	repo := new(mocks.MockPessoaRepository)
	service := newTestService(t, repo)

	_, err := service.ValidateToken(context.Background(), "token-invalido")
	require.Error(t, err)
}
