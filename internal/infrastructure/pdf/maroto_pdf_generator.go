// Package pdf renders the printable invoice using Maroto v2.
//
// Letter page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Company name + contact  │  Invoice # + dates       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  BILL TO: customer name + address + contact                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Unit Price | Line Total         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / Tax / Total / Amount Paid / Balance Due │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: payment history + thank-you line                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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

	"github.com/scwellservice/fieldservice-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 13, Green: 71, Blue: 161}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct{}

func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoicePDF renders the invoice and returns the PDF bytes. The
// invoice must arrive with items, payments and customer contact fields
// loaded.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	settings *entity.Settings,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Invoice "+invoice.InvoiceNumber, true).
		WithAuthor(settings.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, settings))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billToRow(invoice))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(invoice.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	if len(invoice.Payments) > 0 {
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		for _, r := range paymentRows(invoice.Payments) {
			m.AddRows(r)
		}
	}

	m.AddRows(footerRow(invoice, settings))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: company block on the left, invoice number and dates on the right.
func headerRow(invoice *entity.Invoice, settings *entity.Settings) core.Row {
	return row.New(22).Add(
		col.New(7).Add(
			text.New(settings.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(settings.CompanyAddress, ""), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(contactLine(settings.CompanyPhone, settings.CompanyEmail), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+invoice.CreatedAt.Format("01/02/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
			text.New("Due: "+nonEmpty(invoice.DueDate, "on receipt"), props.Text{
				Size: 8, Align: align.Right, Top: 18, Color: colorGray,
			}),
		),
	)
}

// billToRow: customer block.
func billToRow(invoice *entity.Invoice) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("BILL TO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.CustomerName, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(contactLine(
				nonEmpty(invoice.CustomerAddress, ""),
				contactLine(invoice.CustomerPhone, invoice.CustomerEmail),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 6, align.Left),
		h("Unit Price", 2, align.Right),
		h("Line Total", 3, align.Right),
	)
}

// tableItemRows: one row per line item.
func tableItemRows(items []entity.LineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				it.Description,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				money(it.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				money(it.LineTotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: right-aligned totals block with the balance due highlighted.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(34).Add(
		col.New(5),
		col.New(4).Add(
			label("Subtotal:"),
			label("Tax:"),
			label("Total:"),
			label("Amount Paid:"),
			grandLabel("BALANCE DUE:"),
		),
		col.New(3).Add(
			value(money(invoice.Subtotal)),
			value(money(invoice.Tax)),
			value(money(invoice.Total)),
			value(money(invoice.AmountPaid)),
			grandValue(money(invoice.BalanceDue)),
		),
	)
}

// paymentRows: payment history, one line per ledger entry.
func paymentRows(payments []*entity.Payment) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("PAYMENTS RECEIVED", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, p := range payments {
		desc := p.Date
		if p.Method != "" {
			desc += "  " + p.Method
		}
		if p.Reference != "" {
			desc += "  (" + p.Reference + ")"
		}
		rows = append(rows, row.New(5).Add(
			col.New(9).Add(text.New(desc, props.Text{Size: 8, Top: 0.5, Left: 2, Color: colorGray})),
			col.New(3).Add(text.New(money(p.Amount), props.Text{Size: 8, Align: align.Right, Top: 0.5, Right: 1})),
		))
	}
	return rows
}

func footerRow(invoice *entity.Invoice, settings *entity.Settings) core.Row {
	note := "Thank you for your business."
	if invoice.Notes != "" {
		note = invoice.Notes
	}
	return row.New(12).Add(col.New(12).Add(
		text.New(note, props.Text{Size: 8, Color: colorGray, Top: 4}),
		text.New("Questions? "+contactLine(settings.CompanyPhone, settings.CompanyEmail), props.Text{
			Size: 7, Color: colorGray, Top: 9,
		}),
	))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func contactLine(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "   |   ")
}

// money formats a decimal as US currency with thousands separators.
// Ex: 1234.5 -> "$1,234.50"
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	n := len(whole)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, whole[i])
	}
	out := "$" + string(buf) + "." + frac
	if neg {
		out = "-" + out
	}
	return out
}
