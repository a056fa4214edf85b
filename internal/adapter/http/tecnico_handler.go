package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/turmab/helpdesk/internal/app/tecnico"
	"github.com/turmab/helpdesk/internal/domain/model"
	"go.uber.org/zap"
)

// TecnicoHandler expõe o CRUD de técnicos.
type TecnicoHandler struct {
	service *tecnico.Service
	logger  *zap.Logger
}

// NewTecnicoHandler cria o handler de técnicos.
func NewTecnicoHandler(service *tecnico.Service, logger *zap.Logger) *TecnicoHandler {
	return &TecnicoHandler{service: service, logger: logger}
}

type tecnicoCreateRequest struct {
	Nome   string         `json:"nome" binding:"required"`
	CPF    string         `json:"cpf" binding:"required"`
	Email  string         `json:"email" binding:"required,email"`
	Senha  string         `json:"senha" binding:"required"`
	Perfis []model.Perfil `json:"perfis"`
}

// Na atualização a senha é opcional: vazia mantém o hash atual.
type tecnicoUpdateRequest struct {
	Nome   string         `json:"nome" binding:"required"`
	CPF    string         `json:"cpf" binding:"required"`
	Email  string         `json:"email" binding:"required,email"`
	Senha  string         `json:"senha"`
	Perfis []model.Perfil `json:"perfis"`
}

// FindByID trata GET /tecnicos/:id.
func (h *TecnicoHandler) FindByID(c *gin.Context) {
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

// FindAll trata GET /tecnicos.
func (h *TecnicoHandler) FindAll(c *gin.Context) {
	pessoas, err := h.service.FindAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pessoas)
}

// Create trata POST /tecnicos.
func (h *TecnicoHandler) Create(c *gin.Context) {
	var req tecnicoCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	pessoa, err := h.service.Create(c.Request.Context(), tecnico.Input{
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

	c.Header("Location", fmt.Sprintf("/tecnicos/%d", pessoa.ID))
	c.JSON(http.StatusCreated, pessoa)
}

// Update trata PUT /tecnicos/:id.
func (h *TecnicoHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req tecnicoUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	pessoa, err := h.service.Update(c.Request.Context(), id, tecnico.Input{
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

// Delete trata DELETE /tecnicos/:id.
func (h *TecnicoHandler) Delete(c *gin.Context) {
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
