package cliente

import (
	"context"
	"fmt"

	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/domain/repository"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Input carrega os dados de criação ou atualização de um cliente. O perfil
// CLIENTE é garantido pelo serviço.
type Input struct {
	Nome   string
	CPF    string
	Email  string
	Senha  string
	Perfis []model.Perfil
}

// Service implementa as regras de negócio de clientes sobre o registro comum
// de pessoas. Um cliente é uma pessoa com o perfil CLIENTE.
type Service struct {
	pessoas  repository.PessoaRepository
	chamados repository.ChamadoRepository
	logger   *zap.Logger
}

// NewService cria o serviço de clientes.
func NewService(pessoas repository.PessoaRepository, chamados repository.ChamadoRepository, logger *zap.Logger) *Service {
	return &Service{
		pessoas:  pessoas,
		chamados: chamados,
		logger:   logger,
	}
}

// FindByID busca um cliente pelo id.
func (s *Service) FindByID(ctx context.Context, id uint) (*model.Pessoa, error) {
	pessoa, err := s.pessoas.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}
	if pessoa == nil || !pessoa.TemPerfil(model.PerfilCliente) {
		return nil, apierrors.NotFound(fmt.Sprintf("Objeto não encontrado! Id: %d", id))
	}
	return pessoa, nil
}

// FindAll lista todos os clientes.
func (s *Service) FindAll(ctx context.Context) ([]*model.Pessoa, error) {
	pessoas, err := s.pessoas.FindByPerfil(ctx, model.PerfilCliente)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}
	return pessoas, nil
}

// Create cria um novo cliente. CPF e email precisam ser inéditos entre todas
// as pessoas, não só entre clientes.
func (s *Service) Create(ctx context.Context, input Input) (*model.Pessoa, error) {
	if err := s.validaPorCPFEEmail(ctx, input.CPF, input.Email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	perfis := model.Perfis(input.Perfis).Adicionar(model.PerfilCliente)

	pessoa := &model.Pessoa{
		Nome:   input.Nome,
		CPF:    input.CPF,
		Email:  input.Email,
		Senha:  string(hash),
		Perfis: perfis,
	}

	if err := s.pessoas.Create(ctx, pessoa); err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	s.logger.Info("cliente criado", zap.Uint("id", pessoa.ID), zap.String("email", pessoa.Email))
	return pessoa, nil
}

// Update atualiza um cliente existente. A senha é obrigatória no payload e é
// sempre re-criptografada.
func (s *Service) Update(ctx context.Context, id uint, input Input) (*model.Pessoa, error) {
	pessoa, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validaPorCPFEEmail(ctx, input.CPF, input.Email, id); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	pessoa.Nome = input.Nome
	pessoa.CPF = input.CPF
	pessoa.Email = input.Email
	pessoa.Senha = string(hash)
	pessoa.Perfis = model.Perfis(input.Perfis).Adicionar(model.PerfilCliente)

	if err := s.pessoas.Update(ctx, pessoa); err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	s.logger.Info("cliente atualizado", zap.Uint("id", pessoa.ID))
	return pessoa, nil
}

// Delete remove um cliente. A remoção é bloqueada quando a pessoa aparece em
// qualquer chamado.
func (s *Service) Delete(ctx context.Context, id uint) error {
	pessoa, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}

	count, err := s.chamados.CountByPessoa(ctx, pessoa.ID)
	if err != nil {
		return apierrors.InternalServer("", err)
	}
	if count > 0 {
		return apierrors.DataIntegrity("Cliente possui chamados e não pode ser deletado!")
	}

	if err := s.pessoas.Delete(ctx, pessoa.ID); err != nil {
		return apierrors.InternalServer("", err)
	}

	s.logger.Info("cliente removido", zap.Uint("id", pessoa.ID))
	return nil
}

// validaPorCPFEEmail garante que CPF e email não pertencem a outra pessoa.
func (s *Service) validaPorCPFEEmail(ctx context.Context, cpf, email string, id uint) error {
	existente, err := s.pessoas.FindByCPF(ctx, cpf)
	if err != nil {
		return apierrors.InternalServer("", err)
	}
	if existente != nil && existente.ID != id {
		return apierrors.DataIntegrity("CPF já cadastrado no sistema!")
	}

	existente, err = s.pessoas.FindByEmail(ctx, email)
	if err != nil {
		return apierrors.InternalServer("", err)
	}
	if existente != nil && existente.ID != id {
		return apierrors.DataIntegrity("E-mail já cadastrado no sistema!")
	}

	return nil
}
