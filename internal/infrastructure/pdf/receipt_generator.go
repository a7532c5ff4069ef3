// Package pdf renders donation receipts.
//
// Layout of the A4 page:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: organization name   │  RECEIPT + transaction id     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DONOR: name + email                                         │
//	│  DETAILS: purpose | method | date | status                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  AMOUNT                                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR with the transaction id + thank-you note         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/straydog-api/internal/application/ports"
	"github.com/jhoicas/straydog-api/internal/domain/entity"
)

var _ ports.ReceiptGenerator = (*MarotoReceiptGenerator)(nil)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 180, Green: 83, Blue: 9}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Currency is printed as a code because the built-in fonts lack the rupee sign.
const currency = "INR"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReceiptGenerator implements ports.ReceiptGenerator with Maroto v2.
type MarotoReceiptGenerator struct {
	printer *message.Printer
}

// NewMarotoReceiptGenerator builds the generator. Amounts are grouped the
// English way (1,234.50).
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator {
	return &MarotoReceiptGenerator{printer: message.NewPrinter(language.English)}
}

// GenerateDonationReceipt renders the receipt and returns the PDF bytes.
func (g *MarotoReceiptGenerator) GenerateDonationReceipt(d *entity.Donation, orgName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Donation receipt "+d.TransactionID, true).
		WithAuthor(orgName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d, orgName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(donorRow(d))
	m.AddRows(detailsRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(amountRow(g.formatAmount(d.Amount)))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(d, orgName))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate receipt: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *MarotoReceiptGenerator) formatAmount(amount decimal.Decimal) string {
	return currency + " " + g.printer.Sprintf("%.2f", amount.InexactFloat64())
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRow(d *entity.Donation, orgName string) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(orgName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Stray dog rescue and adoption", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("DONATION RECEIPT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(d.TransactionID, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+receiptDate(d).Format("02 Jan 2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func donorRow(d *entity.Donation) core.Row {
	email := d.DonorEmail
	if d.Anonymous {
		email = "-"
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New("RECEIVED FROM", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.DisplayName(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New("Email: "+nonEmpty(email, "-"), props.Text{
				Size: 8, Top: 12, Color: colorGray,
			}),
		),
	)
}

func detailsRow(d *entity.Donation) core.Row {
	cell := func(label, value string) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Style: fontstyle.Bold, Size: 7, Color: colorGray, Top: 1}),
			text.New(nonEmpty(value, "-"), props.Text{Size: 9, Top: 5}),
		)
	}
	return row.New(12).Add(
		cell("Purpose", d.Purpose),
		cell("Payment method", d.PaymentMethod),
		cell("Donation id", d.ID),
		cell("Status", d.Status),
	)
}

func amountRow(amount string) core.Row {
	return row.New(16).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL RECEIVED:", props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 4, Right: 2,
		})),
		col.New(3).Add(text.New(amount, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Top: 4, Right: 1,
		})),
	)
}

func footerRow(d *entity.Donation, orgName string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(d.TransactionID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
		col.New(9).Add(
			text.New("Thank you for supporting "+orgName+".", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6, Left: 3, Color: colorPrimary,
			}),
			text.New("Your contribution funds rescue, treatment and shelter for stray dogs.\n"+
				"Keep this receipt for your records.", props.Text{
				Size: 8, Top: 16, Left: 3, Color: colorGray,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func receiptDate(d *entity.Donation) time.Time {
	if d.CompletedAt != nil {
		return *d.CompletedAt
	}
	return d.CreatedAt
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
