package lighting

import (
	"fmt"
	"math"

	core "Conduit/internal/calc/core"
)

type SpaceType string

const (
	SpaceOffice     SpaceType = "office"
	SpaceClassroom  SpaceType = "classroom"
	SpaceConference SpaceType = "conference"
	SpaceCorridor   SpaceType = "corridor"
	SpaceLobby      SpaceType = "lobby"
	SpaceRetail     SpaceType = "retail"
	SpaceWarehouse  SpaceType = "warehouse"
	SpaceWorkshop   SpaceType = "workshop"
	SpaceToilet     SpaceType = "toilet"
	SpaceStair      SpaceType = "stair"
	SpaceParking    SpaceType = "parking"
)

type spaceParams struct {
	TargetLux float64 // maintained illuminance target
	MaxLPD    float64 // lighting power density limit, W/m2
}

// Illuminance targets and lighting power density limits by space type.
// Unknown space types are a hard error, not a default.
var paramsBySpace = map[SpaceType]spaceParams{
	SpaceOffice:     {500, 9.7},
	SpaceClassroom:  {300, 10.7},
	SpaceConference: {300, 11.9},
	SpaceCorridor:   {100, 6.6},
	SpaceLobby:      {200, 9.7},
	SpaceRetail:     {500, 14.0},
	SpaceWarehouse:  {150, 7.1},
	SpaceWorkshop:   {300, 12.9},
	SpaceToilet:     {200, 9.5},
	SpaceStair:      {100, 7.4},
	SpaceParking:    {75, 2.0},
}

type Input struct {
	Space             SpaceType `json:"space"`
	AreaM2            float64   `json:"area_m2"`
	LumensPerFixture  float64   `json:"lumens_per_fixture"`
	WattsPerFixture   float64   `json:"watts_per_fixture"`
	UtilizationFactor float64   `json:"utilization_factor"` // optional, 0.8 when zero
	MaintenanceFactor float64   `json:"maintenance_factor"` // optional, 0.8 when zero
}

type Result struct {
	TargetLux      float64     `json:"target_lux"`
	RequiredLumens float64     `json:"required_lumens"`
	FixtureCount   int         `json:"fixture_count"`
	AchievedLux    float64     `json:"achieved_lux"`
	InstalledW     float64     `json:"installed_w"`
	LPD            float64     `json:"lpd_w_m2"`
	MaxLPD         float64     `json:"max_lpd_w_m2"`
	OKLux          bool        `json:"ok_lux"` // achieved_lux >= target_lux
	OKLPD          bool        `json:"ok_lpd"` // lpd <= max_lpd
	Steps          []core.Step `json:"steps"`
	Notes          string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.AreaM2 <= 0 {
		return Result{}, core.Invalidf("area must be positive")
	}
	if in.LumensPerFixture <= 0 {
		return Result{}, core.Invalidf("lumens per fixture must be positive")
	}
	if in.WattsPerFixture <= 0 {
		return Result{}, core.Invalidf("watts per fixture must be positive")
	}
	params, ok := paramsBySpace[in.Space]
	if !ok {
		return Result{}, core.UnknownKeyf("space parameters", string(in.Space))
	}
	if in.UtilizationFactor <= 0 {
		in.UtilizationFactor = 0.8
	}
	if in.MaintenanceFactor <= 0 {
		in.MaintenanceFactor = 0.8
	}

	required := params.TargetLux * in.AreaM2 / (in.UtilizationFactor * in.MaintenanceFactor)
	count := int(math.Ceil(required / in.LumensPerFixture))
	if count < 1 {
		count = 1
	}
	achieved := float64(count) * in.LumensPerFixture * in.UtilizationFactor * in.MaintenanceFactor / in.AreaM2
	installed := float64(count) * in.WattsPerFixture
	lpd := installed / in.AreaM2

	return Result{
		TargetLux:      params.TargetLux,
		RequiredLumens: required,
		FixtureCount:   count,
		AchievedLux:    achieved,
		InstalledW:     installed,
		LPD:            lpd,
		MaxLPD:         params.MaxLPD,
		OKLux:          achieved >= params.TargetLux,
		OKLPD:          lpd <= params.MaxLPD,
		Steps: []core.Step{
			{Label: "Required lumens", Formula: fmt.Sprintf("%.0f x %.1f / (%.2f x %.2f)", params.TargetLux, in.AreaM2, in.UtilizationFactor, in.MaintenanceFactor), Value: required, Unit: "lm"},
			{Label: "Fixture count", Formula: fmt.Sprintf("ceil(%.0f / %.0f)", required, in.LumensPerFixture), Value: float64(count), Unit: ""},
			{Label: "Achieved illuminance", Formula: fmt.Sprintf("%d x %.0f x %.2f x %.2f / %.1f", count, in.LumensPerFixture, in.UtilizationFactor, in.MaintenanceFactor, in.AreaM2), Value: achieved, Unit: "lux"},
			{Label: "Lighting power density", Formula: fmt.Sprintf("%.0f / %.1f", installed, in.AreaM2), Value: lpd, Unit: "W/m2"},
		},
		Notes: "Lumen method sizing with space-type illuminance target and LPD limit.",
	}, nil
}
