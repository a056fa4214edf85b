package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/turmab/helpdesk/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PessoaRepository implementa repository.PessoaRepository sobre GORM.
type PessoaRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewPessoaRepository cria um novo repositório de pessoas.
func NewPessoaRepository(db *gorm.DB, logger *zap.Logger) *PessoaRepository {
	return &PessoaRepository{db: db, logger: logger}
}

// FindByID busca uma pessoa pelo id. Retorna (nil, nil) quando não existe.
func (r *PessoaRepository) FindByID(ctx context.Context, id uint) (*model.Pessoa, error) {
	var pessoa model.Pessoa
	err := r.db.WithContext(ctx).First(&pessoa, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao buscar pessoa por id: %w", err)
	}
	return &pessoa, nil
}

// FindByEmail busca uma pessoa pelo email.
func (r *PessoaRepository) FindByEmail(ctx context.Context, email string) (*model.Pessoa, error) {
	var pessoa model.Pessoa
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&pessoa).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao buscar pessoa por email: %w", err)
	}
	return &pessoa, nil
}

// FindByCPF busca uma pessoa pelo CPF.
func (r *PessoaRepository) FindByCPF(ctx context.Context, cpf string) (*model.Pessoa, error) {
	var pessoa model.Pessoa
	err := r.db.WithContext(ctx).Where("cpf = ?", cpf).First(&pessoa).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao buscar pessoa por cpf: %w", err)
	}
	return &pessoa, nil
}

// FindByPerfil lista as pessoas que carregam o perfil.
func (r *PessoaRepository) FindByPerfil(ctx context.Context, perfil model.Perfil) ([]*model.Pessoa, error) {
	var pessoas []*model.Pessoa
	err := r.db.WithContext(ctx).
		Where("perfis LIKE ?", "%"+string(perfil)+"%").
		Order("id").
		Find(&pessoas).Error
	if err != nil {
		return nil, fmt.Errorf("falha ao listar pessoas por perfil: %w", err)
	}
	return pessoas, nil
}

// Create insere uma nova pessoa e preenche o id gerado.
func (r *PessoaRepository) Create(ctx context.Context, pessoa *model.Pessoa) error {
	if err := r.db.WithContext(ctx).Create(pessoa).Error; err != nil {
		return fmt.Errorf("falha ao criar pessoa: %w", err)
	}
	return nil
}

// Update substitui os campos mutáveis do registro.
func (r *PessoaRepository) Update(ctx context.Context, pessoa *model.Pessoa) error {
	if err := r.db.WithContext(ctx).Save(pessoa).Error; err != nil {
		return fmt.Errorf("falha ao atualizar pessoa: %w", err)
	}
	return nil
}

// Delete remove a pessoa pelo id.
func (r *PessoaRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Pessoa{}, id).Error; err != nil {
		return fmt.Errorf("falha ao remover pessoa: %w", err)
	}
	return nil
}
