package drainage

import (
	"fmt"
	"strconv"

	core "Conduit/internal/calc/core"
)

type Fixture struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type Input struct {
	Fixtures   []Fixture `json:"fixtures"`
	SlopePct   int       `json:"slope_pct"`
	DiameterMM float64   `json:"diameter_mm"` // optional, checked when given
}

type Result struct {
	TotalDFU           float64     `json:"total_dfu"`
	RecommendedMM      float64     `json:"recommended_mm"`
	NotSizable         bool        `json:"not_sizable"` // exceeds the largest tabulated pipe
	CheckedMM          float64     `json:"checked_mm"`
	CheckedCapacityDFU float64     `json:"checked_capacity_dfu"`
	Compliant          bool        `json:"compliant"` // total_dfu <= checked capacity
	Steps              []core.Step `json:"steps"`
	Notes              string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if len(in.Fixtures) == 0 {
		return Result{}, core.Invalidf("at least one fixture required")
	}
	capacities, ok := capacityBySlope[in.SlopePct]
	if !ok {
		return Result{}, core.UnknownKeyf("branch capacities", strconv.Itoa(in.SlopePct)+"%")
	}

	total := 0.0
	for _, f := range in.Fixtures {
		if f.Count <= 0 {
			return Result{}, core.Invalidf("fixture %q: count must be positive", f.Type)
		}
		dfu, ok := dfuByFixture[f.Type]
		if !ok {
			return Result{}, core.UnknownKeyf("fixture units", f.Type)
		}
		total += dfu * float64(f.Count)
	}

	res := Result{TotalDFU: total}
	res.Steps = append(res.Steps, core.Step{
		Label: "Total fixture units", Formula: "sum(count x DFU)", Value: total, Unit: "DFU",
	})

	// Smallest tabulated diameter whose capacity at this gradient carries
	// the load. Zero capacity means the size is not permitted at the slope.
	res.NotSizable = true
	for _, d := range tabulatedDiameters {
		if c := capacities[d]; c > 0 && c >= total {
			res.RecommendedMM = d
			res.NotSizable = false
			break
		}
	}
	if res.NotSizable {
		res.Notes = "Load exceeds the largest tabulated branch; split the run or use a stack table."
	} else {
		res.Steps = append(res.Steps, core.Step{
			Label: "Recommended diameter", Formula: fmt.Sprintf("min d: capacity(d, %d%%) >= %.1f", in.SlopePct, total), Value: res.RecommendedMM, Unit: "mm",
		})
		res.Notes = "Fixture-unit branch sizing at the given gradient."
	}

	if in.DiameterMM > 0 {
		d := core.NearestSize(tabulatedDiameters, in.DiameterMM)
		c := capacities[d]
		res.CheckedMM = d
		res.CheckedCapacityDFU = c
		res.Compliant = c > 0 && total <= c
		res.Steps = append(res.Steps, core.Step{
			Label: "Checked pipe capacity", Formula: fmt.Sprintf("capacity(%.0f mm, %d%%)", d, in.SlopePct), Value: c, Unit: "DFU",
		})
	}
	return res, nil
}
