package projector

import (
	"fmt"
	"math"

	core "Conduit/internal/calc/core"
)

type AmbientLight string

const (
	AmbientDark     AmbientLight = "dark"
	AmbientDim      AmbientLight = "dim"
	AmbientModerate AmbientLight = "moderate"
	AmbientBright   AmbientLight = "bright"
)

// Required screen illuminance in lux by ambient light level. Unknown levels
// are a hard error, not a default.
var targetLuxByAmbient = map[AmbientLight]float64{
	AmbientDark:     200,
	AmbientDim:      300,
	AmbientModerate: 500,
	AmbientBright:   750,
}

// Throw ratio presets by lens type, distance over image width.
var throwRatioByLens = map[string]float64{
	"ultra-short": 0.4,
	"short":       0.8,
	"standard":    1.5,
	"long":        2.2,
	"telephoto":   3.0,
}

const metersPerInch = 0.0254

type Input struct {
	Ambient         AmbientLight `json:"ambient"`
	DiagonalIn      float64      `json:"diagonal_in"`
	AspectW         float64      `json:"aspect_w"`    // optional, 16 when zero
	AspectH         float64      `json:"aspect_h"`    // optional, 9 when zero
	Lens            string       `json:"lens"`        // preset key, optional when ratio given
	ThrowRatio      float64      `json:"throw_ratio"` // override
	ProjectorLumens float64      `json:"projector_lumens"`
}

type Result struct {
	ScreenWidthM   float64     `json:"screen_width_m"`
	ScreenHeightM  float64     `json:"screen_height_m"`
	ScreenAreaM2   float64     `json:"screen_area_m2"`
	ThrowRatio     float64     `json:"throw_ratio"`
	ThrowDistanceM float64     `json:"throw_distance_m"`
	RequiredLumens float64     `json:"required_lumens"`
	Compliant      bool        `json:"compliant"` // projector_lumens >= required_lumens
	Steps          []core.Step `json:"steps"`
	Notes          string      `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.DiagonalIn <= 0 {
		return Result{}, core.Invalidf("screen diagonal must be positive")
	}
	if in.ProjectorLumens <= 0 {
		return Result{}, core.Invalidf("projector lumens must be positive")
	}
	if in.AspectW < 0 || in.AspectH < 0 {
		return Result{}, core.Invalidf("aspect ratio terms must be positive")
	}
	target, ok := targetLuxByAmbient[in.Ambient]
	if !ok {
		return Result{}, core.UnknownKeyf("screen illuminance targets", string(in.Ambient))
	}
	if in.AspectW == 0 {
		in.AspectW = 16
	}
	if in.AspectH == 0 {
		in.AspectH = 9
	}
	ratio := in.ThrowRatio
	if ratio <= 0 {
		ratio, ok = throwRatioByLens[in.Lens]
		if !ok {
			return Result{}, core.UnknownKeyf("lens throw ratios", in.Lens)
		}
	}

	diagM := in.DiagonalIn * metersPerInch
	hyp := math.Hypot(in.AspectW, in.AspectH)
	width := diagM * in.AspectW / hyp
	height := diagM * in.AspectH / hyp
	area := width * height
	distance := ratio * width
	required := target * area

	return Result{
		ScreenWidthM:   width,
		ScreenHeightM:  height,
		ScreenAreaM2:   area,
		ThrowRatio:     ratio,
		ThrowDistanceM: distance,
		RequiredLumens: required,
		Compliant:      in.ProjectorLumens >= required,
		Steps: []core.Step{
			{Label: "Screen width", Formula: fmt.Sprintf("%.2f x %.0f / hypot(%.0f, %.0f)", diagM, in.AspectW, in.AspectW, in.AspectH), Value: width, Unit: "m"},
			{Label: "Throw distance", Formula: fmt.Sprintf("%.2f x %.2f", ratio, width), Value: distance, Unit: "m"},
			{Label: "Required lumens", Formula: fmt.Sprintf("%.0f x %.2f", target, area), Value: required, Unit: "lm"},
		},
		Notes: "Throw geometry and brightness adequacy for the ambient light level.",
	}, nil
}
