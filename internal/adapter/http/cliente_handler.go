package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/app/cliente"
	"github.com/turmab/helpdesk/internal/domain/model"
	"go.uber.org/zap"
)

// ClienteHandler expõe o CRUD de clientes.
type ClienteHandler struct {
	service *cliente.Service
	logger  *zap.Logger
}

// NewClienteHandler cria o handler de clientes.
func NewClienteHandler(service *cliente.Service, logger *zap.Logger) *ClienteHandler {
	return &ClienteHandler{service: service, logger: logger}
}

// A senha é obrigatória tanto na criação quanto na atualização.
type clienteRequest struct {
	Nome   string         `json:"nome" binding:"required"`
	CPF    string         `json:"cpf" binding:"required"`
	Email  string         `json:"email" binding:"required,email"`
	Senha  string         `json:"senha" binding:"required"`
	Perfis []model.Perfil `json:"perfis"`
}

// FindByID trata GET /clientes/:id.
func (h *ClienteHandler) FindByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	pessoa, err := h.service.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pessoa)
}

// FindAll trata GET /clientes.
func (h *ClienteHandler) FindAll(c *gin.Context) {
	pessoas, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pessoas)
}

// Create trata POST /clientes.
func (h *ClienteHandler) Create(c *gin.Context) {
	var req clienteRequest
	if !bindJSON(c, &req) {
		return
	}

	pessoa, err := h.service.Create(c.Request.Context(), cliente.Input{
		Nome:   req.Nome,
		CPF:    req.CPF,
		Email:  req.Email,
		Senha:  req.Senha,
		Perfis: req.Perfis,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Location", fmt.Sprintf("/clientes/%d", pessoa.ID))
	c.JSON(http.StatusCreated, pessoa)
}

// Update trata PUT /clientes/:id.
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req clienteRequest
	if !bindJSON(c, &req) {
		return
	}

	pessoa, err := h.service.Update(c.Request.Context(), id, cliente.Input{
		Nome:   req.Nome,
		CPF:    req.CPF,
		Email:  req.Email,
		Senha:  req.Senha,
		Perfis: req.Perfis,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pessoa)
}

// Delete trata DELETE /clientes/:id.
func (h *ClienteHandler) Delete(c *gin.Context) {
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
