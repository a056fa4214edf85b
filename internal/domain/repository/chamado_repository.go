package repository

import (
	"context"

	"github.com/turmab/helpdesk/internal/domain/model"
)

// ChamadoRepository define a interface de acesso a dados de chamados.
type ChamadoRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Chamado, error)
	FindAll(ctx context.Context) ([]*model.Chamado, error)
	Create(ctx context.Context, chamado *model.Chamado) error
	Update(ctx context.Context, chamado *model.Chamado) error
	Delete(ctx context.Context, id uint) error

	// CountByPessoa conta os chamados que referenciam a pessoa como técnico
	// ou como cliente. Usado pela regra que bloqueia a exclusão de pessoas
	// com chamados.
	CountByPessoa(ctx context.Context, pessoaID uint) (int64, error)
}
