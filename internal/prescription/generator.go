package prescription

import (
	"bytes"
	"context"

	"github.com/go-pdf/fpdf"

	domain "github.com/mediflowhq/mediflow/internal/domain/booking"
)

const advisoryNote = "Prescription Notes: Take rest, stay hydrated, and follow up in 7 days."

// Generator renders the fixed single-page prescription template.
type Generator struct{}

func NewGenerator() domain.DocumentGenerator {
	return &Generator{}
}

func (g *Generator) Generate(_ context.Context, fields domain.DocumentFields) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Appointment Prescription", "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 12)
	writeField(pdf, "Name", fields.Name)
	writeField(pdf, "Email", fields.Email)
	writeField(pdf, "Date", fields.Date)
	writeField(pdf, "Doctor", fields.Doctor)
	writeField(pdf, "Symptoms", fields.Symptoms)
	pdf.Ln(6)

	pdf.MultiCell(0, 8, advisoryNote, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, label, value string) {
	pdf.CellFormat(0, 8, fieldLine(label, value), "", 1, "L", false, 0, "")
}

// fieldLine renders every field unconditionally; an absent optional value
// shows an explicit placeholder instead of dropping the line.
func fieldLine(label, value string) string {
	if value == "" {
		value = "N/A"
	}
	return label + ": " + value
}
