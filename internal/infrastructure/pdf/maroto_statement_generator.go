// Package pdf genera el estado de cuenta de una deuda en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Kraya + N° de deuda + fecha de creación             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DEUDOR:   nombre + username + email                         │
//	│  ACREEDOR: nombre + username + email                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Método | Monto (historial de pagos)          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: monto original / pagado / SALDO ACTUAL             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

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

	"github.com/kraya/platform-api/internal/application/statement"
	"github.com/kraya/platform-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 16, Green: 78, Blue: 100}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ statement.Generator = (*MarotoStatementGenerator)(nil)

// MarotoStatementGenerator implementa statement.Generator usando Maroto v2.
type MarotoStatementGenerator struct{}

// NewMarotoStatementGenerator construye el generador.
func NewMarotoStatementGenerator() *MarotoStatementGenerator {
	return &MarotoStatementGenerator{}
}

// GenerateStatement genera el PDF del estado de cuenta y devuelve sus bytes.
func (g *MarotoStatementGenerator) GenerateStatement(
	debt *entity.Debt,
	debtor, creditor *entity.User,
	payments []*entity.Payment,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Debt statement #%d", debt.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(debt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partyRow("DEBTOR", debtor))
	m.AddRows(partyRow("CREDITOR", creditor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, p := range payments {
		m.AddRows(paymentRow(p))
	}
	if len(payments) == 0 {
		m.AddRows(row.New(6).Add(
			col.New(12).Add(text.New("No payments recorded", props.Text{Size: 8, Color: colorGray, Align: align.Center})),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRows(debt, payments)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(debt *entity.Debt) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("Kraya", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Debt statement", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(fmt.Sprintf("Debt #%d", debt.ID), props.Text{Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1}),
			text.New("Created "+debt.CreationDate.Format("02/01/2006"), props.Text{Size: 8, Align: align.Right, Top: 9, Color: colorGray}),
		),
	)
}

func partyRow(label string, user *entity.User) core.Row {
	full := user.FirstName + " " + user.LastName
	return row.New(10).Add(
		col.New(3).Add(text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1})),
		col.New(5).Add(text.New(full+" ("+user.Username+")", props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New(user.Email, props.Text{Size: 8, Top: 1, Color: colorGray, Align: align.Right})),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(4).Add(text.New("Date", header)),
		col.New(4).Add(text.New("Method", header)),
		col.New(4).Add(text.New("Amount", mergeAlign(header, align.Right))),
	)
}

func paymentRow(p *entity.Payment) core.Row {
	cell := props.Text{Size: 8}
	return row.New(6).Add(
		col.New(4).Add(text.New(p.TransactionDate.Format("02/01/2006 15:04"), cell)),
		col.New(4).Add(text.New(p.PaymentMethod, cell)),
		col.New(4).Add(text.New(p.Amount.StringFixed(2), mergeAlign(cell, align.Right))),
	)
}

func totalsRows(debt *entity.Debt, payments []*entity.Payment) []core.Row {
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}
	label := props.Text{Size: 9, Align: align.Right}
	value := props.Text{Size: 9, Align: align.Right}
	bold := props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary}
	return []core.Row{
		row.New(6).Add(
			col.New(8).Add(text.New("Original amount", label)),
			col.New(4).Add(text.New(debt.OriginalAmount.StringFixed(2), value)),
		),
		row.New(6).Add(
			col.New(8).Add(text.New("Total paid", label)),
			col.New(4).Add(text.New(paid.StringFixed(2), value)),
		),
		row.New(8).Add(
			col.New(8).Add(text.New("OUTSTANDING ("+debt.Status+")", bold)),
			col.New(4).Add(text.New(debt.CurrentAmount.StringFixed(2), bold)),
		),
	}
}

func mergeAlign(t props.Text, a align.Type) props.Text {
	t.Align = a
	return t
}
