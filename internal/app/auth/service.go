package auth

import (
	"context"

	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/domain/repository"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
	"github.com/turmab/helpdesk/pkg/security"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// MensagemCredenciaisInvalidas é a resposta única para qualquer falha de
// login. Email desconhecido e senha errada produzem exatamente o mesmo erro,
// para não revelar quais emails existem na base.
const MensagemCredenciaisInvalidas = "Email ou senha inválidos"

// Service autentica pessoas e resolve tokens de volta para pessoas.
type Service struct {
	pessoas    repository.PessoaRepository
	keyManager *security.KeyManager
	logger     *zap.Logger
}

// NewService cria o serviço de autenticação.
func NewService(pessoas repository.PessoaRepository, keyManager *security.KeyManager, logger *zap.Logger) *Service {
	return &Service{
		pessoas:    pessoas,
		keyManager: keyManager,
		logger:     logger,
	}
}

// Login verifica as credenciais e emite um token JWT com o email como
// sujeito.
func (s *Service) Login(ctx context.Context, email, senha string) (string, error) {
	pessoa, err := s.pessoas.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("falha ao buscar pessoa no login", zap.Error(err))
		return "", apierrors.InternalServer("", err)
	}
	if pessoa == nil {
		return "", apierrors.Unauthorized(MensagemCredenciaisInvalidas)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pessoa.Senha), []byte(senha)); err != nil {
		s.logger.Info("tentativa de login com senha inválida", zap.String("email", email))
		return "", apierrors.Unauthorized(MensagemCredenciaisInvalidas)
	}

	token, err := s.keyManager.GenerateToken(pessoa.Email)
	if err != nil {
		return "", apierrors.InternalServer("", err)
	}

	s.logger.Info("login realizado", zap.String("email", email))
	return token, nil
}

// ValidateToken verifica o token e resolve a pessoa correspondente no banco.
// Os perfis vêm sempre do registro atual, nunca do token.
func (s *Service) ValidateToken(ctx context.Context, token string) (*model.Pessoa, error) {
	email, err := s.keyManager.VerifyToken(token)
	if err != nil {
		return nil, apierrors.Unauthorized("Token inválido ou expirado")
	}

	pessoa, err := s.pessoas.FindByEmail(ctx, email)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}
	if pessoa == nil {
		// Token válido para uma pessoa que já foi removida.
		return nil, apierrors.Unauthorized("Token inválido ou expirado")
	}

	return pessoa, nil
}
