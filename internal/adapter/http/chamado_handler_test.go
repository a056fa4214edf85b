package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/turmab/helpdesk/internal/app/chamado"
	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/mocks"
	"github.com/turmab/helpdesk/internal/testutils"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
)

func setupChamadoRouter(t *testing.T) (*mocks.MockChamadoRepository, *mocks.MockPessoaRepository, *mocks.MockCache, func() *ChamadoHandler) {
	chamados := new(mocks.MockChamadoRepository)
	pessoas := new(mocks.MockPessoaRepository)
	cacheMock := new(mocks.MockCache)
	build := func() *ChamadoHandler {
		service := chamado.NewService(chamados, pessoas, cacheMock, time.Minute, testutils.TestLogger(t))
		return NewChamadoHandler(service, testutils.TestLogger(t))
	}
	return chamados, pessoas, cacheMock, build
}

func TestChamadoCreate(t *testing.T) {
	chamados, pessoas, cacheMock, build := setupChamadoRouter(t)

	pessoas.On("FindByID", mock.Anything, uint(2)).
		Return(&model.Pessoa{ID: 2, Nome: "Bill Gates", Perfis: model.Perfis{model.PerfilTecnico}}, nil)
	pessoas.On("FindByID", mock.Anything, uint(3)).
		Return(&model.Pessoa{ID: 3, Nome: "Linus Torvalds", Perfis: model.Perfis{model.PerfilCliente}}, nil)
	chamados.On("Create", mock.Anything, mock.AnythingOfType("*model.Chamado")).
		Run(func(args mock.Arguments) {
			// Espelha o que a camada de persistência faz na inserção
			ch := args.Get(1).(*model.Chamado)
			ch.ID = 1
			ch.DataAbertura = model.Hoje()
		}).Return(nil)
	cacheMock.On("Delete", mock.Anything, "chamados:list").Return(nil)

	router := testutils.SetupTestRouter(t)
	router.POST("/chamados", build().Create)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/chamados", map[string]any{
		"prioridade":  "MEDIA",
		"status":      "ABERTO",
		"titulo":      "Impressora quebrada",
		"observacoes": "Não liga",
		"tecnico":     2,
		"cliente":     3,
	}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusCreated)
	assert.Equal(t, "/chamados/1", resp.Header().Get("Location"))

	var body map[string]any
	testutils.ParseResponse(t, resp, &body)
	assert.Equal(t, "Bill Gates", body["nomeTecnico"])
	assert.Equal(t, "Linus Torvalds", body["nomeCliente"])
	assert.NotEmpty(t, body["dataAbertura"])
}

func TestChamadoCreatePrioridadeInvalida(t *testing.T) {
	_, _, _, build := setupChamadoRouter(t)

	router := testutils.SetupTestRouter(t)
	router.POST("/chamados", build().Create)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/chamados", map[string]any{
		"prioridade":  "URGENTE",
		"status":      "ABERTO",
		"titulo":      "Teste",
		"observacoes": "Teste",
		"tecnico":     2,
		"cliente":     3,
	}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	var body apierrors.ValidationError
	testutils.ParseResponse(t, resp, &body)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "prioridade", body.Errors[0].FieldName)
}

func TestChamadoCreateTecnicoInexistente(t *testing.T) {
	_, pessoas, _, build := setupChamadoRouter(t)

	pessoas.On("FindByID", mock.Anything, uint(99)).Return(nil, nil)

	router := testutils.SetupTestRouter(t)
	router.POST("/chamados", build().Create)

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/chamados", map[string]any{
		"prioridade":  "ALTA",
		"status":      "ABERTO",
		"titulo":      "Sem técnico",
		"observacoes": "Teste",
		"tecnico":     99,
		"cliente":     3,
	}, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}

func TestChamadoFindAll(t *testing.T) {
	chamados, pessoas, cacheMock, build := setupChamadoRouter(t)

	cacheMock.On("Get", mock.Anything, "chamados:list", mock.Anything).Return(false, nil)
	chamados.On("FindAll", mock.Anything).Return([]*model.Chamado{
		{ID: 1, TecnicoID: 2, ClienteID: 3, Titulo: "Chamado 01"},
	}, nil)
	pessoas.On("FindByID", mock.Anything, uint(2)).
		Return(&model.Pessoa{ID: 2, Nome: "Bill Gates", Perfis: model.Perfis{model.PerfilTecnico}}, nil)
	pessoas.On("FindByID", mock.Anything, uint(3)).
		Return(&model.Pessoa{ID: 3, Nome: "Linus Torvalds", Perfis: model.Perfis{model.PerfilCliente}}, nil)
	cacheMock.On("Set", mock.Anything, "chamados:list", mock.Anything, time.Minute).Return(nil)

	router := testutils.SetupTestRouter(t)
	router.GET("/chamados", build().FindAll)

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/chamados", nil, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var body []map[string]any
	testutils.ParseResponse(t, resp, &body)
	require.Len(t, body, 1)
	assert.Equal(t, "Chamado 01", body[0]["titulo"])
}

func TestChamadoDelete(t *testing.T) {
	chamados, _, cacheMock, build := setupChamadoRouter(t)

	chamados.On("FindByID", mock.Anything, uint(1)).Return(&model.Chamado{ID: 1}, nil)
	chamados.On("Delete", mock.Anything, uint(1)).Return(nil)
	cacheMock.On("Delete", mock.Anything, "chamados:list").Return(nil)

	router := testutils.SetupTestRouter(t)
	router.DELETE("/chamados/:id", build().Delete)

	resp := testutils.MakeRequest(t, router, http.MethodDelete, "/chamados/1", nil, nil)

	testutils.RequireHTTPStatus(t, resp, http.StatusNoContent)
}
