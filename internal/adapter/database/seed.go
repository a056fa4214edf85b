package database

import (
	"context"
	"fmt"

	"github.com/turmab/helpdesk/internal/domain/model"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Seed popula o banco com dados iniciais de demonstração. É idempotente:
// não faz nada quando a tabela de pessoas já tem registros.
func (d *Database) Seed(ctx context.Context) error {
	var count int64
	if err := d.db.WithContext(ctx).Model(&model.Pessoa{}).Count(&count).Error; err != nil {
		return fmt.Errorf("falha ao verificar dados existentes: %w", err)
	}
	if count > 0 {
		d.logger.Info("banco já populado, seed ignorado", zap.Int64("pessoas", count))
		return nil
	}

	senha, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("falha ao gerar hash de senha: %w", err)
	}

	tecnico := &model.Pessoa{
		Nome:   "Bill Gates",
		CPF:    "80527954780",
		Email:  "bill@mail.com",
		Senha:  string(senha),
		Perfis: model.Perfis{model.PerfilAdmin, model.PerfilTecnico},
	}

	cliente := &model.Pessoa{
		Nome:   "Linus Torvalds",
		CPF:    "70511744013",
		Email:  "linus@mail.com",
		Senha:  string(senha),
		Perfis: model.Perfis{model.PerfilCliente},
	}

	if err := d.db.WithContext(ctx).Create(tecnico).Error; err != nil {
		return fmt.Errorf("falha ao criar técnico inicial: %w", err)
	}
	if err := d.db.WithContext(ctx).Create(cliente).Error; err != nil {
		return fmt.Errorf("falha ao criar cliente inicial: %w", err)
	}

	chamado := &model.Chamado{
		Prioridade:  model.PrioridadeMedia,
		Status:      model.StatusAndamento,
		Titulo:      "Chamado 01",
		Observacoes: "Primeiro chamado",
		TecnicoID:   tecnico.ID,
		ClienteID:   cliente.ID,
	}
	if err := d.db.WithContext(ctx).Create(chamado).Error; err != nil {
		return fmt.Errorf("falha ao criar chamado inicial: %w", err)
	}

	d.logger.Info("seed aplicado",
		zap.Uint("tecnico_id", tecnico.ID),
		zap.Uint("cliente_id", cliente.ID),
		zap.Uint("chamado_id", chamado.ID))
	return nil
}
