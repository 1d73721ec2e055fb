package rainwater

import (
	"fmt"
	"math"

	core "Conduit/internal/calc/core"
)

// Downpipe flow capacity in l/s by nominal diameter (mm), roughly one-third
// full vertical flow.
var capacityByDiameter = map[float64]float64{
	63:  1.4,
	75:  2.2,
	90:  3.4,
	110: 5.5,
	160: 14.0,
}

var tabulatedDiameters = []float64{63, 75, 90, 110, 160}

// Effective-area multipliers for the roof pitch bands.
var pitchFactorByBand = map[string]float64{
	"flat":   1.0, // up to 10 degrees
	"medium": 1.15,
	"steep":  1.3,
}

type Input struct {
	RoofAreaM2    float64 `json:"roof_area_m2"`
	Pitch         string  `json:"pitch"`
	RainfallMMH   float64 `json:"rainfall_mm_h"`
	DownpipeMM    float64 `json:"downpipe_mm"`    // optional, smallest adequate chosen when zero
	DownpipeCount int     `json:"downpipe_count"` // optional, 1 when zero
}

type Result struct {
	EffectiveAreaM2 float64     `json:"effective_area_m2"`
	RunoffLS        float64     `json:"runoff_l_s"`
	DownpipeMM      float64     `json:"downpipe_mm"`
	CapacityLS      float64     `json:"capacity_l_s"` // per downpipe
	DownpipeCount   int         `json:"downpipe_count"`
	Compliant       bool        `json:"compliant"` // count x capacity >= runoff
	Steps           []core.Step `json:"steps"`
	Notes           string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.RoofAreaM2 <= 0 {
		return Result{}, core.Invalidf("roof area must be positive")
	}
	if in.RainfallMMH <= 0 {
		return Result{}, core.Invalidf("rainfall intensity must be positive")
	}
	factor, ok := pitchFactorByBand[in.Pitch]
	if !ok {
		return Result{}, core.UnknownKeyf("pitch factors", in.Pitch)
	}

	effective := in.RoofAreaM2 * factor
	// 1 mm of rain on 1 m2 is 1 litre.
	runoff := effective * in.RainfallMMH / 3600

	res := Result{EffectiveAreaM2: effective, RunoffLS: runoff}
	res.Steps = append(res.Steps,
		core.Step{Label: "Effective roof area", Formula: fmt.Sprintf("%.1f x %.2f", in.RoofAreaM2, factor), Value: effective, Unit: "m2"},
		core.Step{Label: "Design runoff", Formula: fmt.Sprintf("%.1f x %.0f / 3600", effective, in.RainfallMMH), Value: runoff, Unit: "l/s"},
	)

	if in.DownpipeMM > 0 {
		res.DownpipeMM = core.NearestSize(tabulatedDiameters, in.DownpipeMM)
	} else {
		for _, d := range tabulatedDiameters {
			res.DownpipeMM = d
			if capacityByDiameter[d] >= runoff {
				break
			}
		}
	}
	res.CapacityLS = capacityByDiameter[res.DownpipeMM]

	count := in.DownpipeCount
	if count <= 0 {
		count = int(math.Ceil(runoff / res.CapacityLS))
		if count < 1 {
			count = 1
		}
	}
	res.DownpipeCount = count
	res.Compliant = float64(count)*res.CapacityLS >= runoff
	res.Steps = append(res.Steps, core.Step{
		Label: "Downpipes required", Formula: fmt.Sprintf("ceil(%.2f / %.2f)", runoff, res.CapacityLS), Value: float64(count), Unit: "",
	})
	res.Notes = "Roof runoff against vertical downpipe capacity."
	return res, nil
}
