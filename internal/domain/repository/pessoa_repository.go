package repository

import (
	"context"

	"github.com/turmab/helpdesk/internal/domain/model"
)

// PessoaRepository define a interface de acesso a dados de pessoas.
// As buscas retornam (nil, nil) quando o registro não existe; erro apenas
// para falhas de infraestrutura.
type PessoaRepository interface {
	FindByID(ctx context.Context, id uint) (*model.Pessoa, error)
	FindByEmail(ctx context.Context, email string) (*model.Pessoa, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Pessoa, error)
	FindByPerfil(ctx context.Context, perfil model.Perfil) ([]*model.Pessoa, error)
	Create(ctx context.Context, pessoa *model.Pessoa) error
	Update(ctx context.Context, pessoa *model.Pessoa) error
	Delete(ctx context.Context, id uint) error
}
