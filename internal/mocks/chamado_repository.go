package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/turmab/helpdesk/internal/domain/model"
)

// MockChamadoRepository é um mock para repository.ChamadoRepository
type MockChamadoRepository struct {
	mock.Mock
}

func (m *MockChamadoRepository) FindByID(ctx context.Context, id uint) (*model.Chamado, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Chamado), args.Error(1)
}

func (m *MockChamadoRepository) FindAll(ctx context.Context) ([]*model.Chamado, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Chamado), args.Error(1)
}

func (m *MockChamadoRepository) Create(ctx context.Context, chamado *model.Chamado) error {
	args := m.Called(ctx, chamado)
	return args.Error(0)
}

func (m *MockChamadoRepository) Update(ctx context.Context, chamado *model.Chamado) error {
	args := m.Called(ctx, chamado)
	return args.Error(0)
}

func (m *MockChamadoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockChamadoRepository) CountByPessoa(ctx context.Context, pessoaID uint) (int64, error) {
	args := m.Called(ctx, pessoaID)
	return args.Get(0).(int64), args.Error(1)
}
