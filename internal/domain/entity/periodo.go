package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status canônicos do período. Transições estritamente para frente
// (ABERTO → PROCESSADO → APROVADO → EXPORTADO), exceto a reabertura
// explícita antes do selamento.
const (
	PeriodoAberto     = "ABERTO"
	PeriodoProcessado = "PROCESSADO"
	PeriodoAprovado   = "APROVADO"
	PeriodoExportado  = "EXPORTADO"
)

// sinonimosStatus mapeia a grafia legada (bases antigas misturavam inglês e
// português) para o vocabulário canônico. Toda a lógica interna (máquina de
// estados, predicado de bloqueio) opera só sobre os canônicos.
var sinonimosStatus = map[string]string{
	"OPEN":      PeriodoAberto,
	"ABERTO":    PeriodoAberto,
	"PROCESSED": PeriodoProcessado,
	"APPROVED":  PeriodoAprovado,
	"EXPORTED":  PeriodoExportado,
	"SELADO":    PeriodoExportado,
	"CLOSED":    PeriodoExportado,
	"FECHADO":   PeriodoExportado,
}

// StatusBloqueadosTodos lista todas as grafias (canônicas e legadas) que
// tornam um período bloqueado. Usada nas queries que filtram por status no
// banco, onde a canonicalização em Go não alcança.
var StatusBloqueadosTodos = []string{
	PeriodoAprovado, "APPROVED",
	PeriodoExportado, "EXPORTED", "SELADO", "CLOSED", "FECHADO",
}

// CanonicalizarStatusPeriodo converte qualquer grafia conhecida para o status
// canônico. Valores desconhecidos voltam em maiúsculas, sem tradução.
func CanonicalizarStatusPeriodo(s string) string {
	up := strings.ToUpper(strings.TrimSpace(s))
	if c, ok := sinonimosStatus[up]; ok {
		return c
	}
	return up
}

// Periodo é o agregado de uma apuração mensal de benefícios (nome YYYY-MM).
// Criado na primeira solicitação de processamento; nunca é excluído.
type Periodo struct {
	ID                string
	Nome              string // YYYY-MM
	Status            string
	ValorTotal        decimal.Decimal
	TotalFuncionarios int
	ProcessadoPor     string
	ProcessadoEm      *time.Time
	AprovadoPor       string
	AprovadoEm        *time.Time
	ExportadoPor      string
	ExportadoEm       *time.Time
	HashIntegridade   string // presente apenas após o selamento
	CriadoEm          time.Time
	AtualizadoEm      time.Time
}

// StatusCanonico devolve o status já canonicalizado.
func (p *Periodo) StatusCanonico() string {
	return CanonicalizarStatusPeriodo(p.Status)
}

// Bloqueado é o único predicado usado pelo reset guardado e pelas guardas de
// reprocessamento: aprovado ou exportado (em qualquer grafia) não pode mais
// sofrer alteração destrutiva.
func (p *Periodo) Bloqueado() bool {
	switch p.StatusCanonico() {
	case PeriodoAprovado, PeriodoExportado:
		return true
	}
	return false
}

// Selado indica o estado terminal (hash de integridade emitido).
func (p *Periodo) Selado() bool {
	return p.StatusCanonico() == PeriodoExportado
}
