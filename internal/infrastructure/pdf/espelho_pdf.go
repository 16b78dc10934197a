// Package pdf implementa a geração do espelho do período: a evidência de
// auditoria entregue junto com a exportação.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Espelho do Período YYYY-MM │ status + agregados    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Matrícula | Nome | Depto | Dias | VA | Cesta | Tot │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RODAPÉ: aprovado/exportado por + hash de integridade       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/application/relatorio"
	"github.com/joaoalbuquerque1109/gestao-beneficios-sub000/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ptBR formata moeda com vírgula decimal e agrupamento brasileiro.
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

var _ relatorio.EspelhoPDFGenerator = (*MarotoEspelhoGenerator)(nil)

// MarotoEspelhoGenerator implementa relatorio.EspelhoPDFGenerator usando Maroto v2.
type MarotoEspelhoGenerator struct{}

// NewMarotoEspelhoGenerator constrói o gerador.
func NewMarotoEspelhoGenerator() *MarotoEspelhoGenerator { return &MarotoEspelhoGenerator{} }

// GenerateEspelhoPDF gera o PDF e devolve seus bytes.
func (g *MarotoEspelhoGenerator) GenerateEspelhoPDF(
	_ context.Context,
	periodo *entity.Periodo,
	resultados []*entity.ResultadoPeriodo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Espelho do Período "+periodo.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(periodo))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, res := range resultados {
		m.AddRows(resultadoRow(res))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(periodo))
	if periodo.Selado() {
		m.AddRows(seloRow(periodo))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("gerar espelho: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(p *entity.Periodo) core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Espelho do Período "+p.Nome, props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New("Benefícios: vale-alimentação e cesta básica", props.Text{
				Size: 8, Top: 7, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Status: "+p.StatusCanonico(), props.Text{Size: 9, Align: align.Right}),
			text.New("Funcionários: "+strconv.Itoa(p.TotalFuncionarios), props.Text{
				Size: 9, Top: 4, Align: align.Right,
			}),
			text.New("Total: "+moeda(p.ValorTotal), props.Text{
				Size: 9, Top: 8, Align: align.Right, Style: fontstyle.Bold,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary}
	boldRight := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorPrimary, Align: align.Right}
	return row.New(6).Add(
		col.New(2).Add(text.New("Matrícula", bold)),
		col.New(3).Add(text.New("Nome", bold)),
		col.New(2).Add(text.New("Departamento", bold)),
		col.New(1).Add(text.New("Dias", boldRight)),
		col.New(1).Add(text.New("VA", boldRight)),
		col.New(1).Add(text.New("Cesta", boldRight)),
		col.New(2).Add(text.New("Total", boldRight)),
	)
}

func resultadoRow(res *entity.ResultadoPeriodo) core.Row {
	normal := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	return row.New(5).Add(
		col.New(2).Add(text.New(res.Matricula, normal)),
		col.New(3).Add(text.New(res.Nome, normal)),
		col.New(2).Add(text.New(res.Departamento, normal)),
		col.New(1).Add(text.New(strconv.Itoa(res.DiasCreditados), right)),
		col.New(1).Add(text.New(moeda(res.ValorVA), right)),
		col.New(1).Add(text.New(moeda(res.ValorCesta), right)),
		col.New(2).Add(text.New(moeda(res.ValorTotal), right)),
	)
}

func totaisRow(p *entity.Periodo) core.Row {
	return row.New(8).Add(
		col.New(8),
		col.New(4).Add(
			text.New("TOTAL DO PERÍODO: "+moeda(p.ValorTotal), props.Text{
				Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}

func seloRow(p *entity.Periodo) core.Row {
	rotulo := "Selado por " + p.ExportadoPor
	if p.ExportadoEm != nil {
		rotulo += " em " + p.ExportadoEm.Format("02/01/2006 15:04")
	}
	return row.New(10).Add(
		col.New(12).Add(
			text.New(rotulo, props.Text{Size: 8, Color: colorGray}),
			text.New("Hash de integridade: "+p.HashIntegridade, props.Text{
				Size: 8, Top: 4, Style: fontstyle.Bold,
			}),
		),
	)
}

func moeda(d decimal.Decimal) string {
	f, _ := d.Float64()
	return ptBR.Sprintf("R$ %.2f", f)
}
