package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/app/chamado"
	"github.com/turmab/helpdesk/internal/domain/model"
	"go.uber.org/zap"
)

// ChamadoHandler expõe o CRUD de chamados.
type ChamadoHandler struct {
	service *chamado.Service
	logger  *zap.Logger
}

// NewChamadoHandler cria o handler de chamados.
func NewChamadoHandler(service *chamado.Service, logger *zap.Logger) *ChamadoHandler {
	return &ChamadoHandler{service: service, logger: logger}
}

type chamadoRequest struct {
	Prioridade  model.Prioridade `json:"prioridade" binding:"required,oneof=BAIXA MEDIA ALTA"`
	Status      model.Status     `json:"status" binding:"required,oneof=ABERTO ANDAMENTO ENCERRADO"`
	Titulo      string           `json:"titulo" binding:"required,max=100"`
	Observacoes string           `json:"observacoes" binding:"required"`
	Tecnico     uint             `json:"tecnico" binding:"required"`
	Cliente     uint             `json:"cliente" binding:"required"`
}

func (r chamadoRequest) input() chamado.Input {
	return chamado.Input{
		Prioridade:  r.Prioridade,
		Status:      r.Status,
		Titulo:      r.Titulo,
		Observacoes: r.Observacoes,
		TecnicoID:   r.Tecnico,
		ClienteID:   r.Cliente,
	}
}

// FindByID trata GET /chamados/:id.
func (h *ChamadoHandler) FindByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ch, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// FindAll trata GET /chamados.
func (h *ChamadoHandler) FindAll(c *gin.Context) {
	chamados, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, chamados)
}

// Create trata POST /chamados.
func (h *ChamadoHandler) Create(c *gin.Context) {
	var req chamadoRequest
	if !bindJSON(c, &req) {
		return
	}

	ch, err := h.service.Create(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/chamados/%d", ch.ID))
	c.JSON(http.StatusCreated, ch)
}

// Update trata PUT /chamados/:id.
func (h *ChamadoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req chamadoRequest
	if !bindJSON(c, &req) {
		return
	}

	ch, err := h.service.Update(c.Request.Context(), id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

// Delete trata DELETE /chamados/:id.
func (h *ChamadoHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
