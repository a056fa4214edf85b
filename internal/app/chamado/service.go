package chamado

import (
	"context"
	"fmt"
	"time"

	"github.com/turmab/helpdesk/internal/domain/model"
	"github.com/turmab/helpdesk/internal/domain/repository"
	"github.com/turmab/helpdesk/pkg/cache"
	apierrors "github.com/turmab/helpdesk/pkg/errors"
	"go.uber.org/zap"
)

// chave da listagem de chamados no cache
const listCacheKey = "chamados:list"

// Input carrega os dados de criação ou atualização de um chamado.
type Input struct {
	Prioridade  model.Prioridade
	Status      model.Status
	Titulo      string
	Observacoes string
	TecnicoID   uint
	ClienteID   uint
}

// Service implementa as regras de negócio de chamados. A listagem é servida
// do cache quando possível; qualquer escrita invalida a entrada.
type Service struct {
	chamados repository.ChamadoRepository
	pessoas  repository.PessoaRepository
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewService cria o serviço de chamados.
func NewService(
	chamados repository.ChamadoRepository,
	pessoas repository.PessoaRepository,
	cacheStore cache.Cache,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *Service {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &Service{
		chamados: chamados,
		pessoas:  pessoas,
		cache:    cacheStore,
		cacheTTL: cacheTTL,
		logger:   logger,
	}
}

// FindByID busca um chamado pelo id, com os nomes de técnico e cliente
// preenchidos.
func (s *Service) FindByID(ctx context.Context, id uint) (*model.Chamado, error) {
	chamado, err := s.chamados.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}
	if chamado == nil {
		return nil, apierrors.NotFound(fmt.Sprintf("Objeto não encontrado! Id: %d", id))
	}

	if err := s.preencheNomes(ctx, chamado); err != nil {
		return nil, err
	}
	return chamado, nil
}

// FindAll lista todos os chamados.
func (s *Service) FindAll(ctx context.Context) ([]*model.Chamado, error) {
	var cached []*model.Chamado
	if found, err := s.cache.Get(ctx, listCacheKey, &cached); err == nil && found {
		return cached, nil
	}

	chamados, err := s.chamados.FindAll(ctx)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	for _, chamado := range chamados {
		if err := s.preencheNomes(ctx, chamado); err != nil {
			return nil, err
		}
	}

	if err := s.cache.Set(ctx, listCacheKey, chamados, s.cacheTTL); err != nil {
		s.logger.Warn("falha ao gravar listagem de chamados no cache", zap.Error(err))
	}

	return chamados, nil
}

// Create cria um novo chamado. Técnico e cliente precisam existir e carregar
// os perfis correspondentes.
func (s *Service) Create(ctx context.Context, input Input) (*model.Chamado, error) {
	tecnico, cliente, err := s.resolveParticipantes(ctx, input.TecnicoID, input.ClienteID)
	if err != nil {
		return nil, err
	}

	chamado := &model.Chamado{
		Prioridade:  input.Prioridade,
		Status:      input.Status,
		Titulo:      input.Titulo,
		Observacoes: input.Observacoes,
		TecnicoID:   tecnico.ID,
		ClienteID:   cliente.ID,
	}
	s.aplicaFechamento(chamado)

	if err := s.chamados.Create(ctx, chamado); err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	chamado.NomeTecnico = tecnico.Nome
	chamado.NomeCliente = cliente.Nome

	s.invalidaListagem(ctx)
	s.logger.Info("chamado criado", zap.Uint("id", chamado.ID))
	return chamado, nil
}

// Update substitui os campos mutáveis do chamado, preservando id e data de
// abertura. A data de fechamento acompanha o status: é preenchida quando o
// chamado encerra e limpa quando ele reabre.
func (s *Service) Update(ctx context.Context, id uint, input Input) (*model.Chamado, error) {
	chamado, err := s.chamados.FindByID(ctx, id)
	if err != nil {
		return nil, apierrors.InternalServer("", err)
	}
	if chamado == nil {
		return nil, apierrors.NotFound(fmt.Sprintf("Objeto não encontrado! Id: %d", id))
	}

	tecnico, cliente, err := s.resolveParticipantes(ctx, input.TecnicoID, input.ClienteID)
	if err != nil {
		return nil, err
	}

	chamado.Prioridade = input.Prioridade
	chamado.Status = input.Status
	chamado.Titulo = input.Titulo
	chamado.Observacoes = input.Observacoes
	chamado.TecnicoID = tecnico.ID
	chamado.ClienteID = cliente.ID
	s.aplicaFechamento(chamado)

	if err := s.chamados.Update(ctx, chamado); err != nil {
		return nil, apierrors.InternalServer("", err)
	}

	chamado.NomeTecnico = tecnico.Nome
	chamado.NomeCliente = cliente.Nome

	s.invalidaListagem(ctx)
	s.logger.Info("chamado atualizado", zap.Uint("id", chamado.ID))
	return chamado, nil
}

// Delete remove um chamado. Nada referencia chamados, então a remoção é
// incondicional.
func (s *Service) Delete(ctx context.Context, id uint) error {
	chamado, err := s.chamados.FindByID(ctx, id)
	if err != nil {
		return apierrors.InternalServer("", err)
	}
	if chamado == nil {
		return apierrors.NotFound(fmt.Sprintf("Objeto não encontrado! Id: %d", id))
	}

	if err := s.chamados.Delete(ctx, id); err != nil {
		return apierrors.InternalServer("", err)
	}

	s.invalidaListagem(ctx)
	s.logger.Info("chamado removido", zap.Uint("id", id))
	return nil
}

// resolveParticipantes busca o técnico e o cliente referenciados e valida os
// perfis.
func (s *Service) resolveParticipantes(ctx context.Context, tecnicoID, clienteID uint) (*model.Pessoa, *model.Pessoa, error) {
	tecnico, err := s.pessoas.FindByID(ctx, tecnicoID)
	if err != nil {
		return nil, nil, apierrors.InternalServer("", err)
	}
	if tecnico == nil || !tecnico.TemPerfil(model.PerfilTecnico) {
		return nil, nil, apierrors.NotFound(fmt.Sprintf("Técnico não encontrado! Id: %d", tecnicoID))
	}

	cliente, err := s.pessoas.FindByID(ctx, clienteID)
	if err != nil {
		return nil, nil, apierrors.InternalServer("", err)
	}
	if cliente == nil || !cliente.TemPerfil(model.PerfilCliente) {
		return nil, nil, apierrors.NotFound(fmt.Sprintf("Cliente não encontrado! Id: %d", clienteID))
	}

	return tecnico, cliente, nil
}

// aplicaFechamento sincroniza a data de fechamento com o status.
func (s *Service) aplicaFechamento(chamado *model.Chamado) {
	if chamado.Status == model.StatusEncerrado {
		if chamado.DataFechamento == nil {
			hoje := model.Hoje()
			chamado.DataFechamento = &hoje
		}
		return
	}
	chamado.DataFechamento = nil
}

// preencheNomes resolve os nomes de técnico e cliente de um chamado.
func (s *Service) preencheNomes(ctx context.Context, chamado *model.Chamado) error {
	tecnico, err := s.pessoas.FindByID(ctx, chamado.TecnicoID)
	if err != nil {
		return apierrors.InternalServer("", err)
	}
	if tecnico != nil {
		chamado.NomeTecnico = tecnico.Nome
	}

	cliente, err := s.pessoas.FindByID(ctx, chamado.ClienteID)
	if err != nil {
		return apierrors.InternalServer("", err)
	}
	if cliente != nil {
		chamado.NomeCliente = cliente.Nome
	}

	return nil
}

// invalidaListagem remove a listagem do cache após uma escrita.
func (s *Service) invalidaListagem(ctx context.Context) {
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.logger.Warn("falha ao invalidar cache de chamados", zap.Error(err))
	}
}
