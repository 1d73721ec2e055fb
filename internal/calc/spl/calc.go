package spl

import (
	"fmt"
	"math"

	core "Conduit/internal/calc/core"
)

type Application string

const (
	AppBackground Application = "background"
	AppPaging     Application = "paging"
	AppEmergency  Application = "emergency"
)

// Target SPL at the listener by application. Unknown applications are a hard
// error, not a default.
var targetDBByApp = map[Application]float64{
	AppBackground: 75,
	AppPaging:     80,
	AppEmergency:  85,
}

// Sensitivity presets in dB at 1 W / 1 m by speaker model.
var sensitivityByModel = map[string]float64{
	"ceiling-6w":    88,
	"ceiling-10w":   90,
	"wall-6w":       90,
	"column-20w":    93,
	"horn-15w":      105,
	"horn-30w":      108,
	"pendant-10w":   89,
	"cabinet-20w":   92,
	"subwoofer-60w": 95,
}

type Input struct {
	Application   Application `json:"application"`
	Model         string      `json:"model"`          // preset key, optional when sensitivity given
	SensitivityDB float64     `json:"sensitivity_db"` // dB/W/m override
	TapPowerW     float64     `json:"tap_power_w"`
	DistanceM     float64     `json:"distance_m"`
	RefDistanceM  float64     `json:"ref_distance_m"` // optional, 1 m when zero
	SpeakerCount  int         `json:"speaker_count"`  // optional, 1 when zero
}

type Result struct {
	SensitivityDB float64     `json:"sensitivity_db"`
	SPLAt1mDB     float64     `json:"spl_at_1m_db"`
	SPLDB         float64     `json:"spl_db"`
	TargetDB      float64     `json:"target_db"`
	HeadroomDB    float64     `json:"headroom_db"`
	Compliant     bool        `json:"compliant"` // spl_db >= target_db
	Steps         []core.Step `json:"steps"`
	Notes         string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.TapPowerW <= 0 {
		return Result{}, core.Invalidf("tap power must be positive")
	}
	if in.DistanceM <= 0 {
		return Result{}, core.Invalidf("distance must be positive")
	}
	target, ok := targetDBByApp[in.Application]
	if !ok {
		return Result{}, core.UnknownKeyf("SPL targets", string(in.Application))
	}
	sens := in.SensitivityDB
	if sens <= 0 {
		sens, ok = sensitivityByModel[in.Model]
		if !ok {
			return Result{}, core.UnknownKeyf("speaker sensitivity presets", in.Model)
		}
	}
	if in.RefDistanceM <= 0 {
		in.RefDistanceM = 1
	}
	n := in.SpeakerCount
	if n <= 0 {
		n = 1
	}

	at1m := sens + 10*math.Log10(in.TapPowerW)
	lp := at1m - 20*math.Log10(in.DistanceM/in.RefDistanceM)
	if n > 1 {
		lp += 10 * math.Log10(float64(n))
	}

	steps := []core.Step{
		{Label: "SPL at reference distance", Formula: fmt.Sprintf("%.0f + 10 x log10(%.1f)", sens, in.TapPowerW), Value: at1m, Unit: "dB"},
		{Label: "SPL at listener", Formula: fmt.Sprintf("%.1f - 20 x log10(%.1f / %.1f)", at1m, in.DistanceM, in.RefDistanceM), Value: lp, Unit: "dB"},
	}
	if n > 1 {
		steps = append(steps, core.Step{Label: "Multi-speaker summation", Formula: fmt.Sprintf("+ 10 x log10(%d)", n), Value: 10 * math.Log10(float64(n)), Unit: "dB"})
	}

	return Result{
		SensitivityDB: sens,
		SPLAt1mDB:     at1m,
		SPLDB:         lp,
		TargetDB:      target,
		HeadroomDB:    lp - target,
		Compliant:     lp >= target,
		Steps:         steps,
		Notes:         "Inverse-square SPL at the listener against the application target.",
	}, nil
}
