package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// FormatoData é o formato de serialização de datas da API (dd/MM/yyyy).
const FormatoData = "02/01/2006"

// Data representa uma data de calendário. No JSON é serializada no formato
// dd/MM/yyyy; no banco de dados é armazenada como DATE.
type Data struct {
	time.Time
}

// Hoje retorna a data atual.
func Hoje() Data {
	return Data{time.Now()}
}

// NovaData cria uma Data a partir de um time.Time.
func NovaData(t time.Time) Data {
	return Data{t}
}

// MarshalJSON serializa a data como "dd/MM/yyyy".
func (d Data) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(fmt.Sprintf("%q", d.Format(FormatoData))), nil
}

// UnmarshalJSON aceita "dd/MM/yyyy" ou null.
func (d *Data) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(FormatoData, s)
	if err != nil {
		return fmt.Errorf("data inválida %q: esperado o formato dd/MM/yyyy", s)
	}
	d.Time = t
	return nil
}

// GormDataType informa ao GORM o tipo de coluna desejado.
func (Data) GormDataType() string {
	return "date"
}

// Value implementa driver.Valuer.
func (d Data) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time, nil
}

// Scan implementa sql.Scanner. O SQLite devolve datas como texto, os demais
// drivers como time.Time.
func (d *Data) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.parse(string(v))
	case string:
		return d.parse(v)
	default:
		return fmt.Errorf("não foi possível converter %T para Data", value)
	}
}

func (d *Data) parse(s string) error {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("não foi possível interpretar %q como Data", s)
}
