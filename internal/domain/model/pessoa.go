package model

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Perfil é um marcador de capacidade atribuído a uma Pessoa.
type Perfil string

const (
	PerfilAdmin   Perfil = "ADMIN"
	PerfilCliente Perfil = "CLIENTE"
	PerfilTecnico Perfil = "TECNICO"
)

// Valido informa se o perfil é um dos valores conhecidos.
func (p Perfil) Valido() bool {
	switch p {
	case PerfilAdmin, PerfilCliente, PerfilTecnico:
		return true
	}
	return false
}

// Perfis é o conjunto de perfis de uma pessoa, persistido como texto
// separado por vírgula.
type Perfis []Perfil

// Contem informa se o conjunto inclui o perfil.
func (p Perfis) Contem(perfil Perfil) bool {
	for _, atual := range p {
		if atual == perfil {
			return true
		}
	}
	return false
}

// Adicionar inclui o perfil no conjunto, sem duplicar.
func (p Perfis) Adicionar(perfil Perfil) Perfis {
	if p.Contem(perfil) {
		return p
	}
	return append(p, perfil)
}

// Value implementa driver.Valuer.
func (p Perfis) Value() (driver.Value, error) {
	nomes := make([]string, len(p))
	for i, perfil := range p {
		nomes[i] = string(perfil)
	}
	return strings.Join(nomes, ","), nil
}

// Scan implementa sql.Scanner.
func (p *Perfis) Scan(value interface{}) error {
	var texto string
	switch v := value.(type) {
	case nil:
		*p = nil
		return nil
	case string:
		texto = v
	case []byte:
		texto = string(v)
	default:
		return fmt.Errorf("não foi possível converter %T para Perfis", value)
	}

	*p = nil
	for _, nome := range strings.Split(texto, ",") {
		if nome = strings.TrimSpace(nome); nome != "" {
			*p = append(*p, Perfil(nome))
		}
	}
	return nil
}

// Pessoa é o registro comum de identidade do helpdesk. Clientes e técnicos
// não são subtipos: são visões sobre Pessoa diferenciadas pelo conjunto de
// perfis. CPF e email são únicos entre todas as pessoas, com índice único
// no banco como garantia além da pré-checagem da camada de serviço.
type Pessoa struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Nome        string `gorm:"size:100;not null" json:"nome"`
	CPF         string `gorm:"column:cpf;uniqueIndex;size:14;not null" json:"cpf"`
	Email       string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Senha       string `gorm:"not null" json:"-"`
	Perfis      Perfis `gorm:"type:text" json:"perfis"`
	DataCriacao Data   `json:"dataCriacao"`
}

// TableName define o nome da tabela.
func (Pessoa) TableName() string {
	return "pessoas"
}

// TemPerfil informa se a pessoa carrega o perfil.
func (p *Pessoa) TemPerfil(perfil Perfil) bool {
	return p.Perfis.Contem(perfil)
}

// BeforeCreate preenche a data de criação quando não informada.
func (p *Pessoa) BeforeCreate(tx *gorm.DB) error {
	if p.DataCriacao.IsZero() {
		p.DataCriacao = Hoje()
	}
	return nil
}
