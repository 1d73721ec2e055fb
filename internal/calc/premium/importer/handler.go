package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"Conduit/internal/calc/voltdrop"
	"Conduit/internal/metrics"
)

type Handler struct{}

type ScheduleImportResult struct {
	Count   int               `json:"count"`
	Results []voltdrop.Result `json:"results"`
}

// Schedule accepts an Excel cable schedule and runs each data row through
// the voltage-drop calculator. Rows that fail to parse or calculate are
// skipped, matching the permissive import behavior the portal always had.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []voltdrop.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseScheduleRow(rows[i])
		if err != nil {
			metrics.ImportRows.WithLabelValues("skipped").Inc()
			continue
		}
		res, err := voltdrop.Calculate(input)
		if err != nil {
			metrics.ImportRows.WithLabelValues("skipped").Inc()
			continue
		}
		metrics.ImportRows.WithLabelValues("ok").Inc()
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScheduleImportResult{Count: len(results), Results: results})
}

func parseScheduleRow(row []string) (voltdrop.Input, error) {
	// expected: circuit, design_amps, csa_mm2, length_m, voltage_v(optional)
	if len(row) < 4 {
		return voltdrop.Input{}, fmt.Errorf("bad row")
	}
	amps, err := toFloat(row[1])
	if err != nil {
		return voltdrop.Input{}, err
	}
	csa, err := toFloat(row[2])
	if err != nil {
		return voltdrop.Input{}, err
	}
	length, err := toFloat(row[3])
	if err != nil {
		return voltdrop.Input{}, err
	}
	voltage := 0.0
	if len(row) > 4 && row[4] != "" {
		voltage, _ = toFloat(row[4])
	}
	return voltdrop.Input{
		Circuit:    voltdrop.CircuitType(row[0]),
		DesignAmps: amps,
		CSAMM2:     csa,
		LengthM:    length,
		VoltageV:   voltage,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}
