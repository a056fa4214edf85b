package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/turmab/helpdesk/internal/domain/model"
)

// MockPessoaRepository é um mock para repository.PessoaRepository
type MockPessoaRepository struct {
	mock.Mock
}

func (m *MockPessoaRepository) FindByID(ctx context.Context, id uint) (*model.Pessoa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) FindByEmail(ctx context.Context, email string) (*model.Pessoa, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) FindByCPF(ctx context.Context, cpf string) (*model.Pessoa, error) {
	args := m.Called(ctx, cpf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) FindByPerfil(ctx context.Context, perfil model.Perfil) ([]*model.Pessoa, error) {
	args := m.Called(ctx, perfil)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Pessoa), args.Error(1)
}

func (m *MockPessoaRepository) Create(ctx context.Context, pessoa *model.Pessoa) error {
	args := m.Called(ctx, pessoa)
	return args.Error(0)
}

func (m *MockPessoaRepository) Update(ctx context.Context, pessoa *model.Pessoa) error {
	args := m.Called(ctx, pessoa)
	return args.Error(0)
}

func (m *MockPessoaRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
