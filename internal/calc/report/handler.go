package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	core "Conduit/internal/calc/core"
	"Conduit/internal/metrics"
)

type Input struct {
	Project   string      `json:"project"`
	Author    string      `json:"author"`
	Title     string      `json:"title"`
	Tool      string      `json:"tool"`
	Compliant *bool       `json:"compliant"`
	Steps     []core.Step `json:"steps"`
	Notes     string      `json:"notes"`
}

type Handler struct{}

// Generate renders a submitted calculation trace as a PDF: a title block and
// one row per step (label, formula, value, unit).
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Calculation Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Calculator: %s", input.Tool))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	if len(input.Steps) > 0 {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(70, 7, "Step", "1", 0, "L", false, 0, "")
		pdf.CellFormat(70, 7, "Formula", "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, "Value", "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 7, "Unit", "1", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, s := range input.Steps {
			pdf.CellFormat(70, 6, s.Label, "1", 0, "L", false, 0, "")
			pdf.CellFormat(70, 6, s.Formula, "1", 0, "L", false, 0, "")
			pdf.CellFormat(30, 6, fmt.Sprintf("%.3f", s.Value), "1", 0, "R", false, 0, "")
			pdf.CellFormat(20, 6, s.Unit, "1", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if input.Compliant != nil {
		verdict := "PASS"
		if !*input.Compliant {
			verdict = "FAIL"
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Compliance: %s", verdict))
		pdf.Ln(10)
	}

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, input.Notes, "", "L", false)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	metrics.ReportsGenerated.Inc()
}
