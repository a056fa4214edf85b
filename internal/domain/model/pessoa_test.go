package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerfisValueScan(t *testing.T) {
	perfis := Perfis{PerfilAdmin, PerfilTecnico}

	v, err := perfis.Value()
	require.NoError(t, err)
	assert.Equal(t, "ADMIN,TECNICO", v)

	var lido Perfis
	require.NoError(t, lido.Scan("ADMIN,TECNICO"))
	assert.Equal(t, perfis, lido)
}

func TestPerfisScanVazio(t *testing.T) {
	var perfis Perfis
	require.NoError(t, perfis.Scan(""))
	assert.Empty(t, perfis)

	require.NoError(t, perfis.Scan(nil))
	assert.Empty(t, perfis)
}

func TestPerfisAdicionarSemDuplicar(t *testing.T) {
	perfis := Perfis{PerfilCliente}

	perfis = perfis.Adicionar(PerfilCliente)
	assert.Len(t, perfis, 1)

	perfis = perfis.Adicionar(PerfilAdmin)
	assert.Len(t, perfis, 2)
	assert.True(t, perfis.Contem(PerfilAdmin))
}

func TestPessoaTemPerfil(t *testing.T) {
	pessoa := &Pessoa{Perfis: Perfis{PerfilTecnico}}

	assert.True(t, pessoa.TemPerfil(PerfilTecnico))
	assert.False(t, pessoa.TemPerfil(PerfilCliente))
}

func TestStatusEPrioridadeValidos(t *testing.T) {
	assert.True(t, StatusAberto.Valido())
	assert.True(t, StatusEncerrado.Valido())
	assert.False(t, Status("FECHADO").Valido())

	assert.True(t, PrioridadeAlta.Valida())
	assert.False(t, Prioridade("URGENTE").Valida())
}
