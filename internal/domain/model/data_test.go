package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataMarshalJSON(t *testing.T) {
	d := NovaData(time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC))

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"15/03/2023"`, string(b))
}

func TestDataMarshalJSONZero(t *testing.T) {
	var d Data

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDataUnmarshalJSON(t *testing.T) {
	var d Data
	require.NoError(t, json.Unmarshal([]byte(`"25/12/2024"`), &d))

	assert.Equal(t, 25, d.Day())
	assert.Equal(t, time.December, d.Month())
	assert.Equal(t, 2024, d.Year())
}

func TestDataUnmarshalJSONNull(t *testing.T) {
	var d Data
	require.NoError(t, json.Unmarshal([]byte("null"), &d))
	assert.True(t, d.IsZero())
}

func TestDataUnmarshalJSONFormatoInvalido(t *testing.T) {
	var d Data
	err := json.Unmarshal([]byte(`"2024-12-25"`), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dd/MM/yyyy")
}

func TestDataScan(t *testing.T) {
	var d Data
	require.NoError(t, d.Scan("2023-03-15"))
	assert.Equal(t, 15, d.Day())

	require.NoError(t, d.Scan(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2024, d.Year())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDataValueZero(t *testing.T) {
	var d Data
	v, err := d.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
