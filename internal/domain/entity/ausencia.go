package entity

import "time"

// Tipos de ausência manual.
const (
	AusenciaInjustificada = "INJUSTIFICADA"
	AusenciaJustificada   = "JUSTIFICADA"
)

// Ausencia é um registro diário de falta de um funcionário, criado por
// importação ou digitação. Depois que a janela de um período selado a
// consome, o registro é tratado como imutável (garantia operacional, não
// constraint de banco).
type Ausencia struct {
	ID        string
	Matricula string
	Data      time.Time
	Tipo      string // INJUSTIFICADA | JUSTIFICADA
	Motivo    string
	CriadoEm  time.Time
}

// TipoValido indica se a classificação da ausência é conhecida. Linhas com
// tipo desconhecido são ignoradas (e contadas) pelo processamento.
func (a *Ausencia) TipoValido() bool {
	return a.Tipo == AusenciaInjustificada || a.Tipo == AusenciaJustificada
}
