package chamado

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/mocks"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
	"go.uber.org/zap/zaptest"
)

func newTestService(t *testing.T) (*Service, *mocks.MockChamadoRepository, *mocks.MockPessoaRepository, *mocks.MockCache) {
	chamados := new(mocks.MockChamadoRepository)
	pessoas := new(mocks.MockPessoaRepository)
	cacheMock := new(mocks.MockCache)
	service := NewService(chamados, pessoas, cacheMock, 5*time.Minute, zaptest.NewLogger(t))
	return service, chamados, pessoas, cacheMock
}

func tecnicoDeTeste() *model.Pessoa {
	return &model.Pessoa{ID: 2, Nome: "Bill Gates", Perfis: model.Perfis{model.PerfilTecnico}}
}

func clienteDeTeste() *model.Pessoa {
	return &model.Pessoa{ID: 3, Nome: "Linus Torvalds", Perfis: model.Perfis{model.PerfilCliente}}
}

func TestCreateChamado(t *testing.T) {
	service, chamados, pessoas, cacheMock := newTestService(t)

	pessoas.On("FindByID", mock.Anything, uint(2)).Return(tecnicoDeTeste(), nil)
	pessoas.On("FindByID", mock.Anything, uint(3)).Return(clienteDeTeste(), nil)
	chamados.On("Create", mock.Anything, mock.AnythingOfType("*model.Chamado")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Chamado).ID = 1
		}).Return(nil)
	cacheMock.On("Delete", mock.Anything, "chamados:list").Return(nil)

	criado, err := service.Create(context.Background(), Input{
		Prioridade:  model.PrioridadeMedia,
		Status:      model.StatusAberto,
		Titulo:      "Impressora quebrada",
		Observacoes: "Não liga",
		TecnicoID:   2,
		ClienteID:   3,
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), criado.ID)
	assert.Equal(t, "Bill Gates", criado.NomeTecnico)
	assert.Equal(t, "Linus Torvalds", criado.NomeCliente)
	assert.Nil(t, criado.DataFechamento)
	cacheMock.AssertCalled(t, "Delete", mock.Anything, "chamados:list")
}

func TestCreateChamadoTecnicoInexistente(t *testing.T) {
	service, _, pessoas, _ := newTestService(t)

	pessoas.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	_, err := service.Create(context.Background(), Input{
		Prioridade: model.PrioridadeAlta,
		Status:     model.StatusAberto,
		Titulo:     "Sem técnico",
		TecnicoID:  99,
		ClienteID:  3,
	})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestCreateChamadoPessoaSemPerfilDeTecnico(t *testing.T) {
	service, _, pessoas, _ := newTestService(t)

	// Pessoa existe mas é só cliente: não pode atender chamado
	pessoas.On("FindByID", mock.Anything, uint(3)).Return(clienteDeTeste(), nil)

	_, err := service.Create(context.Background(), Input{
		Prioridade: model.PrioridadeAlta,
		Status:     model.StatusAberto,
		Titulo:     "Técnico inválido",
		TecnicoID:  3,
		ClienteID:  3,
	})
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}

func TestUpdateChamadoEncerradoPreencheDataFechamento(t *testing.T) {
	service, chamados, pessoas, cacheMock := newTestService(t)

	existente := &model.Chamado{
		ID:           1,
		DataAbertura: model.Hoje(),
		Prioridade:   model.PrioridadeMedia,
		Status:       model.StatusAndamento,
		Titulo:       "Chamado 01",
		TecnicoID:    2,
		ClienteID:    3,
	}
	chamados.On("FindByID", mock.Anything, uint(1)).Return(existente, nil)
	pessoas.On("FindByID", mock.Anything, uint(2)).Return(tecnicoDeTeste(), nil)
	pessoas.On("FindByID", mock.Anything, uint(3)).Return(clienteDeTeste(), nil)
	chamados.On("Update", mock.Anything, mock.AnythingOfType("*model.Chamado")).Return(nil)
	cacheMock.On("Delete", mock.Anything, "chamados:list").Return(nil)

	atualizado, err := service.Update(context.Background(), 1, Input{
		Prioridade:  model.PrioridadeMedia,
		Status:      model.StatusEncerrado,
		Titulo:      "Chamado 01",
		Observacoes: "Resolvido",
		TecnicoID:   2,
		ClienteID:   3,
	})
	require.NoError(t, err)
	require.NotNil(t, atualizado.DataFechamento)
	assert.Equal(t, uint(1), atualizado.ID)
}

func TestUpdateChamadoReabertoLimpaDataFechamento(t *testing.T) {
	service, chamados, pessoas, cacheMock := newTestService(t)

	fechamento := model.Hoje()
	existente := &model.Chamado{
		ID:             1,
		DataAbertura:   model.Hoje(),
		DataFechamento: &fechamento,
		Prioridade:     model.PrioridadeMedia,
		Status:         model.StatusEncerrado,
		Titulo:         "Chamado 01",
		TecnicoID:      2,
		ClienteID:      3,
	}
	chamados.On("FindByID", mock.Anything, uint(1)).Return(existente, nil)
	pessoas.On("FindByID", mock.Anything, uint(2)).Return(tecnicoDeTeste(), nil)
	pessoas.On("FindByID", mock.Anything, uint(3)).Return(clienteDeTeste(), nil)
	chamados.On("Update", mock.Anything, mock.AnythingOfType("*model.Chamado")).Return(nil)
	cacheMock.On("Delete", mock.Anything, "chamados:list").Return(nil)

	atualizado, err := service.Update(context.Background(), 1, Input{
		Prioridade: model.PrioridadeMedia,
		Status:     model.StatusAberto,
		Titulo:     "Chamado 01",
		TecnicoID:  2,
		ClienteID:  3,
	})
	require.NoError(t, err)
	assert.Nil(t, atualizado.DataFechamento)
}

func TestFindAllUsaCache(t *testing.T) {
	service, chamados, _, cacheMock := newTestService(t)

	cacheMock.On("Get", mock.Anything, "chamados:list", mock.Anything).Return(true, nil)

	_, err := service.FindAll(context.Background())
	require.NoError(t, err)

	chamados.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestFindAllPopulaCache(t *testing.T) {
	service, chamados, pessoas, cacheMock := newTestService(t)

	cacheMock.On("Get", mock.Anything, "chamados:list", mock.Anything).Return(false, nil)
	chamados.On("FindAll", mock.Anything).Return([]*model.Chamado{
		{ID: 1, TecnicoID: 2, ClienteID: 3},
	}, nil)
	pessoas.On("FindByID", mock.Anything, uint(2)).Return(tecnicoDeTeste(), nil)
	pessoas.On("FindByID", mock.Anything, uint(3)).Return(clienteDeTeste(), nil)
	cacheMock.On("Set", mock.Anything, "chamados:list", mock.Anything, 5*time.Minute).Return(nil)

	lista, err := service.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, lista, 1)
	assert.Equal(t, "Bill Gates", lista[0].NomeTecnico)
	cacheMock.AssertExpectations(t)
}

func TestDeleteChamado(t *testing.T) {
	service, chamados, _, cacheMock := newTestService(t)

	chamados.On("FindByID", mock.Anything, uint(1)).Return(&model.Chamado{ID: 1}, nil)
	chamados.On("Delete", mock.Anything, uint(1)).Return(nil)
	cacheMock.On("Delete", mock.Anything, "chamados:list").Return(nil)

	require.NoError(t, service.Delete(context.Background(), 1))
	chamados.AssertExpectations(t)
}

func TestDeleteChamadoInexistente(t *testing.T) {
	service, chamados, _, _ := newTestService(t)

	chamados.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	err := service.Delete(context.Background(), 99)
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
}
