package coverage

import (
	"fmt"
	"math"

	core "Conduit/internal/calc/core"
)

type Input struct {
	CeilingHeightM  float64 `json:"ceiling_height_m"`
	ListeningPlaneM float64 `json:"listening_plane_m"` // optional, 1.2 m (seated) when zero
	DispersionDeg   float64 `json:"dispersion_deg"`
	RoomAreaM2      float64 `json:"room_area_m2"` // optional, speaker count omitted when zero
}

type Result struct {
	RadiusM          float64     `json:"radius_m"`
	AreaPerSpeakerM2 float64     `json:"area_per_speaker_m2"`
	SpeakerCount     int         `json:"speaker_count"`
	InfiniteCoverage bool        `json:"infinite_coverage"` // dispersion at 180 deg
	Steps            []core.Step `json:"steps"`
	Notes            string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.CeilingHeightM <= 0 {
		return Result{}, core.Invalidf("ceiling height must be positive")
	}
	if in.ListeningPlaneM < 0 {
		return Result{}, core.Invalidf("listening plane must not be negative")
	}
	if in.ListeningPlaneM == 0 {
		in.ListeningPlaneM = 1.2
	}
	if in.CeilingHeightM <= in.ListeningPlaneM {
		return Result{}, core.Invalidf("ceiling height must exceed the listening plane")
	}
	if in.DispersionDeg <= 0 || in.DispersionDeg > 180 {
		return Result{}, core.Invalidf("dispersion angle must be in (0, 180]")
	}

	drop := in.CeilingHeightM - in.ListeningPlaneM

	// tan(90 deg) has no finite value: a 180 degree cone covers the whole
	// plane. Reported as an explicit sentinel, never as IEEE infinity.
	if in.DispersionDeg == 180 {
		return Result{
			InfiniteCoverage: true,
			SpeakerCount:     1,
			Steps: []core.Step{
				{Label: "Coverage radius", Formula: fmt.Sprintf("%.2f x tan(90)", drop), Value: 0, Unit: "m"},
			},
			Notes: "Dispersion of 180 degrees covers the listening plane without bound.",
		}, nil
	}

	radius := drop * math.Tan(in.DispersionDeg/2*math.Pi/180)
	area := math.Pi * radius * radius

	res := Result{
		RadiusM:          radius,
		AreaPerSpeakerM2: area,
		Steps: []core.Step{
			{Label: "Coverage radius", Formula: fmt.Sprintf("(%.2f - %.2f) x tan(%.0f / 2)", in.CeilingHeightM, in.ListeningPlaneM, in.DispersionDeg), Value: radius, Unit: "m"},
			{Label: "Area per speaker", Formula: fmt.Sprintf("pi x %.2f^2", radius), Value: area, Unit: "m2"},
		},
		Notes: "Ceiling speaker coverage at the listening plane, edge-to-edge layout.",
	}
	if in.RoomAreaM2 > 0 {
		count := int(math.Ceil(in.RoomAreaM2 / area))
		if count < 1 {
			count = 1
		}
		res.SpeakerCount = count
		res.Steps = append(res.Steps, core.Step{
			Label: "Speakers required", Formula: fmt.Sprintf("ceil(%.1f / %.2f)", in.RoomAreaM2, area), Value: float64(count), Unit: "",
		})
	}
	return res, nil
}
