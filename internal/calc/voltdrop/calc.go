package voltdrop

import (
	"fmt"

	core "Conduit/internal/calc/core"
)

type CircuitType string

const (
	CircuitLighting CircuitType = "lighting"
	CircuitPower    CircuitType = "power"
)

// Three-phase voltage drop in mV per amp per metre for copper conductors,
// keyed by cross-section in mm2. Nearest tabulated size, ties to smaller.
var mvamByCSA = map[float64]float64{
	1.5: 25,
	2.5: 15,
	4:   9.5,
	6:   6.4,
	10:  3.8,
	16:  2.4,
	25:  1.5,
	35:  1.1,
	50:  0.81,
	70:  0.57,
	95:  0.43,
	120: 0.34,
	150: 0.28,
	185: 0.23,
	240: 0.18,
	300: 0.15,
}

var tabulatedSizes = []float64{
	1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300,
}

// Maximum voltage drop as a percentage of nominal voltage, by circuit type.
var dropLimitPctByCircuit = map[CircuitType]float64{
	CircuitLighting: 3.0,
	CircuitPower:    5.0,
}

type Input struct {
	Circuit    CircuitType `json:"circuit"`
	VoltageV   float64     `json:"voltage_v"` // optional, 400 V when zero
	DesignAmps float64     `json:"design_amps"`
	CSAMM2     float64     `json:"csa_mm2"`
	LengthM    float64     `json:"length_m"`
}

type Result struct {
	CSAMM2       float64     `json:"csa_mm2"` // tabulated size actually used
	MVAM         float64     `json:"mvam"`
	DropV        float64     `json:"drop_v"`
	DropPct      float64     `json:"drop_pct"`
	DropLimitPct float64     `json:"drop_limit_pct"`
	Compliant    bool        `json:"compliant"` // drop_pct <= drop_limit_pct
	Steps        []core.Step `json:"steps"`
	Notes        string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.DesignAmps <= 0 {
		return Result{}, core.Invalidf("design current must be positive")
	}
	if in.CSAMM2 <= 0 {
		return Result{}, core.Invalidf("cross-section must be positive")
	}
	if in.LengthM <= 0 {
		return Result{}, core.Invalidf("length must be positive")
	}
	if in.VoltageV < 0 {
		return Result{}, core.Invalidf("supply voltage must be positive")
	}
	limit, ok := dropLimitPctByCircuit[in.Circuit]
	if !ok {
		return Result{}, core.UnknownKeyf("voltage drop limits", string(in.Circuit))
	}
	if in.VoltageV == 0 {
		in.VoltageV = 400
	}

	csa := core.NearestSize(tabulatedSizes, in.CSAMM2)
	mvam := mvamByCSA[csa]
	drop := mvam * in.DesignAmps * in.LengthM / 1000
	pct := drop / in.VoltageV * 100

	return Result{
		CSAMM2:       csa,
		MVAM:         mvam,
		DropV:        drop,
		DropPct:      pct,
		DropLimitPct: limit,
		Compliant:    pct <= limit,
		Steps: []core.Step{
			{Label: "Voltage drop", Formula: fmt.Sprintf("%.2f x %.1f x %.1f / 1000", mvam, in.DesignAmps, in.LengthM), Value: drop, Unit: "V"},
			{Label: "Drop ratio", Formula: fmt.Sprintf("%.2f / %.0f x 100", drop, in.VoltageV), Value: pct, Unit: "%"},
		},
		Notes: "mV/A/m cable voltage drop against the circuit-type limit.",
	}, nil
}
