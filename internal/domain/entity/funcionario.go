package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de funcionário. Os temporários (FERIAS, LICENCA, AFASTADO) exigem
// StatusInicio e StatusFim preenchidos em conjunto.
const (
	StatusAtivo     = "ATIVO"
	StatusFerias    = "FERIAS"
	StatusLicenca   = "LICENCA"
	StatusAfastado  = "AFASTADO"
	StatusDesligado = "DESLIGADO"
	StatusInativo   = "INATIVO"
)

// StatusEmFolha é o conjunto de status que entram no processamento do período:
// ativos mais todos os afastamentos temporários. Desligados e inativos ficam
// fora do cálculo, mas seus resultados históricos nunca são tocados.
var StatusEmFolha = []string{StatusAtivo, StatusFerias, StatusLicenca, StatusAfastado}

// Funcionario representa um colaborador elegível a benefícios.
// A matrícula é o identificador estável atribuído pelo RH (não é gerado).
type Funcionario struct {
	Matricula    string
	Nome         string
	Cargo        string
	Salario      decimal.Decimal
	Departamento string
	Localizacao  string
	Status       string
	DataAdmissao time.Time
	StatusInicio *time.Time // início do status temporário (férias/licença/afastamento)
	StatusFim    *time.Time // fim do status temporário; anda junto com StatusInicio
	CriadoEm     time.Time
	AtualizadoEm time.Time
}

// StatusTemporario indica se o status atual carrega vigência (férias, licença
// ou afastamento).
func (f *Funcionario) StatusTemporario() bool {
	switch f.Status {
	case StatusFerias, StatusLicenca, StatusAfastado:
		return true
	}
	return false
}

// VigenciaValida valida a invariante do status temporário: StatusInicio e
// StatusFim devem vir ambos preenchidos ou ambos vazios, e o fim nunca antes
// do início.
func (f *Funcionario) VigenciaValida() bool {
	if (f.StatusInicio == nil) != (f.StatusFim == nil) {
		return false
	}
	if f.StatusInicio != nil && f.StatusFim.Before(*f.StatusInicio) {
		return false
	}
	return true
}

// EmFolha indica se o funcionário entra no processamento do período.
func (f *Funcionario) EmFolha() bool {
	for _, s := range StatusEmFolha {
		if f.Status == s {
			return true
		}
	}
	return false
}
