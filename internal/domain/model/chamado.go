package model

import "gorm.io/gorm"

// Prioridade de atendimento de um chamado.
type Prioridade string

const (
	PrioridadeBaixa Prioridade = "BAIXA"
	PrioridadeMedia Prioridade = "MEDIA"
	PrioridadeAlta  Prioridade = "ALTA"
)

// Valida informa se a prioridade é um dos valores conhecidos.
func (p Prioridade) Valida() bool {
	switch p {
	case PrioridadeBaixa, PrioridadeMedia, PrioridadeAlta:
		return true
	}
	return false
}

// Status do ciclo de vida de um chamado.
type Status string

const (
	StatusAberto    Status = "ABERTO"
	StatusAndamento Status = "ANDAMENTO"
	StatusEncerrado Status = "ENCERRADO"
)

// Valido informa se o status é um dos valores conhecidos.
func (s Status) Valido() bool {
	switch s {
	case StatusAberto, StatusAndamento, StatusEncerrado:
		return true
	}
	return false
}

// Chamado é um ticket de suporte. Todo chamado referencia exatamente um
// técnico e um cliente existentes; nada referencia um chamado, então a
// remoção é incondicional.
type Chamado struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	DataAbertura   Data       `json:"dataAbertura"`
	DataFechamento *Data      `json:"dataFechamento,omitempty"`
	Prioridade     Prioridade `gorm:"size:20;not null" json:"prioridade"`
	Status         Status     `gorm:"size:20;not null" json:"status"`
	Titulo         string     `gorm:"size:100;not null" json:"titulo"`
	Observacoes    string     `gorm:"type:text" json:"observacoes"`
	TecnicoID      uint       `gorm:"not null;index" json:"tecnico"`
	ClienteID      uint       `gorm:"not null;index" json:"cliente"`

	// Preenchidos pela camada de serviço a partir das pessoas referenciadas.
	NomeTecnico string `gorm:"-" json:"nomeTecnico,omitempty"`
	NomeCliente string `gorm:"-" json:"nomeCliente,omitempty"`
}

// TableName define o nome da tabela.
func (Chamado) TableName() string {
	return "chamados"
}

// BeforeCreate preenche a data de abertura quando não informada.
func (c *Chamado) BeforeCreate(tx *gorm.DB) error {
	if c.DataAbertura.IsZero() {
		c.DataAbertura = Hoje()
	}
	return nil
}
