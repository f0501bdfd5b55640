package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// PDFExporter renders datasets into a basic tabular PDF.
type PDFExporter struct{}

// NewPDFExporter constructs a PDF exporter.
func NewPDFExporter() *PDFExporter {
	return &PDFExporter{}
}

// Render creates a PDF document with an optional title and table body.
func (e *PDFExporter) Render(data Dataset, title string) ([]byte, error) {
	if len(data.Headers) == 0 {
		return nil, fmt.Errorf("pdf requires at least one header")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.AddPage()

	if title != "" {
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 10, strings.ToUpper(title), "", 1, "C", false, 0, "")
		pdf.Ln(5)
	}

	pdf.SetFont("Arial", "B", 10)
	colWidth := 190.0 / float64(len(data.Headers))
	for _, header := range data.Headers {
		pdf.CellFormat(colWidth, 8, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, row := range data.Rows {
		for _, header := range data.Headers {
			value := row[header]
			pdf.CellFormat(colWidth, 7, value, "1", 0, "", false, 0, "")
		}
		pdf.Ln(-1)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// InvoiceLine is a single billed item on an invoice document.
type InvoiceLine struct {
	Description string
	Amount      string
}

// Invoice describes the content of a rendered invoice PDF.
type Invoice struct {
	Number   string
	Issuer   string
	Contact  string
	BillTo   string
	IssuedOn string
	Lines    []InvoiceLine
	Total    string
	Footer   string
}

// RenderInvoice produces a single-page invoice document.
func (e *PDFExporter) RenderInvoice(inv Invoice) ([]byte, error) {
	if inv.Number == "" {
		return nil, fmt.Errorf("invoice requires a number")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, inv.Issuer, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if inv.Contact != "" {
		pdf.CellFormat(0, 6, inv.Contact, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("INVOICE %s", inv.Number), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if inv.BillTo != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Bill to: %s", inv.BillTo), "", 1, "L", false, 0, "")
	}
	if inv.IssuedOn != "" {
		pdf.CellFormat(0, 6, fmt.Sprintf("Date: %s", inv.IssuedOn), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(140, 7, line.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, line.Amount, "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(140, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, inv.Total, "1", 1, "R", false, 0, "")

	if inv.Footer != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "I", 9)
		pdf.CellFormat(0, 6, inv.Footer, "", 1, "L", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}
