package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/turmab/helpdesk/internal/domain/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ChamadoRepository implementa repository.ChamadoRepository sobre GORM.
type ChamadoRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewChamadoRepository cria um novo repositório de chamados.
func NewChamadoRepository(db *gorm.DB, logger *zap.Logger) *ChamadoRepository {
	return &ChamadoRepository{db: db, logger: logger}
}

// FindByID busca um chamado pelo id. Retorna (nil, nil) quando não existe.
func (r *ChamadoRepository) FindByID(ctx context.Context, id uint) (*model.Chamado, error) {
	var chamado model.Chamado
	err := r.db.WithContext(ctx).First(&chamado, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("falha ao buscar chamado: %w", err)
	}
	return &chamado, nil
}

// FindAll lista todos os chamados.
func (r *ChamadoRepository) FindAll(ctx context.Context) ([]*model.Chamado, error) {
	var chamados []*model.Chamado
	if err := r.db.WithContext(ctx).Order("id").Find(&chamados).Error; err != nil {
		return nil, fmt.Errorf("falha ao listar chamados: %w", err)
	}
	return chamados, nil
}

// Create insere um novo chamado e preenche o id gerado.
func (r *ChamadoRepository) Create(ctx context.Context, chamado *model.Chamado) error {
	if err := r.db.WithContext(ctx).Create(chamado).Error; err != nil {
		return fmt.Errorf("falha ao criar chamado: %w", err)
	}
	return nil
}

// Update substitui os campos mutáveis do chamado.
func (r *ChamadoRepository) Update(ctx context.Context, chamado *model.Chamado) error {
	if err := r.db.WithContext(ctx).Save(chamado).Error; err != nil {
		return fmt.Errorf("falha ao atualizar chamado: %w", err)
	}
	return nil
}

// Delete remove o chamado pelo id.
func (r *ChamadoRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Chamado{}, id).Error; err != nil {
		return fmt.Errorf("falha ao remover chamado: %w", err)
	}
	return nil
}

// CountByPessoa conta os chamados que referenciam a pessoa como técnico ou
// cliente.
func (r *ChamadoRepository) CountByPessoa(ctx context.Context, pessoaID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Chamado{}).
		Where("tecnico_id = ? OR cliente_id = ?", pessoaID, pessoaID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("falha ao contar chamados da pessoa: %w", err)
	}
	return count, nil
}
