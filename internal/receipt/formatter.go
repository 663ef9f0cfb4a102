// Package receipt assembles printable payment summaries.
//
// The formatter produces a complete right-to-left HTML document plus a
// derived filename; the actual print dialog and PDF export run in the
// browser at fixed page settings (1in margin, letter, portrait, 2x scale).
package receipt

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"lezioni/internal/core"
)

//go:embed receipt.html
var templateFS embed.FS

var receiptTmpl = template.Must(template.ParseFS(templateFS, "receipt.html"))

// Document is a fully assembled printable receipt.
type Document struct {
	Title    string
	Filename string
	HTML     []byte
}

type row struct {
	Student string
	Date    string
	Amount  string
}

// Render formats a grouped ledger slice into a printable document.
// An empty filterStudent means the all-payments receipt.
func Render(g core.ReceiptGroup, filterStudent string) (Document, error) {
	months := strings.Join(g.Months, " ")

	var doc Document
	if filterStudent == "" {
		doc.Title = "סיכום שיעורים " + months
		doc.Filename = fmt.Sprintf("All_Payments_%s.pdf", months)
	} else {
		doc.Title = "סיכום שיעורים של " + filterStudent
		doc.Filename = fmt.Sprintf("%s %s.pdf", filterStudent, months)
	}

	data := struct {
		Title    string
		Filename string
		Rows     []row
		Total    string
	}{
		Title:    doc.Title,
		Filename: doc.Filename,
		Total:    formatAmount(g.Total),
	}
	for _, p := range g.Rows {
		data.Rows = append(data.Rows, row{
			Student: p.Student,
			Date:    p.Date.String(),
			Amount:  formatAmount(p.Amount),
		})
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, data); err != nil {
		return Document{}, fmt.Errorf("render receipt: %w", err)
	}
	doc.HTML = buf.Bytes()
	return doc, nil
}

// formatAmount fixes the amount to two decimals with the currency glyph,
// display-time only.
func formatAmount(m core.Money) string {
	return fmt.Sprintf("₪%d.%02d", m.Cents/100, m.Cents%100)
}
