package reverb

import (
	"fmt"

	core "Conduit/internal/calc/core"
)

const sabineConstant = 0.161

type Surface struct {
	Name     string  `json:"name"`
	Material string  `json:"material"`
	AreaM2   float64 `json:"area_m2"`
}

type Input struct {
	Room        string    `json:"room"`
	VolumeM3    float64   `json:"volume_m3"`
	Surfaces    []Surface `json:"surfaces"`
	PersonCount int       `json:"person_count"` // optional audience absorption
}

type BandResult struct {
	FrequencyHz   int     `json:"frequency_hz"`
	AbsorptionM2  float64 `json:"absorption_m2"`
	RT60S         float64 `json:"rt60_s"`
	NotComputable bool    `json:"not_computable"` // zero absorption in this band
}

type Result struct {
	Bands     []BandResult `json:"bands"`
	MidRT60S  float64      `json:"mid_rt60_s"` // 500 Hz
	MaxRT60S  float64      `json:"max_rt60_s"`
	Compliant bool         `json:"compliant"` // mid_rt60_s <= max_rt60_s
	Steps     []core.Step  `json:"steps"`
	Notes     string       `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.VolumeM3 <= 0 {
		return Result{}, core.Invalidf("room volume must be positive")
	}
	if len(in.Surfaces) == 0 {
		return Result{}, core.Invalidf("at least one surface required")
	}
	maxRT, ok := maxRT60ByRoom[in.Room]
	if !ok {
		return Result{}, core.UnknownKeyf("RT60 targets", in.Room)
	}

	var absorption [6]float64
	for _, s := range in.Surfaces {
		if s.AreaM2 <= 0 {
			return Result{}, core.Invalidf("surface %q: area must be positive", s.Name)
		}
		coeffs, ok := absorptionByMaterial[s.Material]
		if !ok {
			return Result{}, core.UnknownKeyf("absorption coefficients", s.Material)
		}
		for i := range Bands {
			absorption[i] += s.AreaM2 * coeffs[i]
		}
	}
	if in.PersonCount > 0 {
		for i := range Bands {
			absorption[i] += float64(in.PersonCount) * personAbsorption[i]
		}
	}

	res := Result{MaxRT60S: maxRT}
	for i, f := range Bands {
		br := BandResult{FrequencyHz: f, AbsorptionM2: absorption[i]}
		if absorption[i] <= 0 {
			// Sabine divides by total absorption; nothing meaningful
			// can be reported for a band with none.
			br.NotComputable = true
		} else {
			br.RT60S = sabineConstant * in.VolumeM3 / absorption[i]
		}
		res.Bands = append(res.Bands, br)
	}

	mid := res.Bands[midBand]
	res.MidRT60S = mid.RT60S
	res.Compliant = !mid.NotComputable && mid.RT60S <= maxRT
	res.Steps = []core.Step{
		{Label: "Mid-band absorption (500 Hz)", Formula: "sum(area x alpha) + persons x alpha_p", Value: mid.AbsorptionM2, Unit: "m2"},
		{Label: "Mid-band RT60", Formula: fmt.Sprintf("0.161 x %.1f / %.2f", in.VolumeM3, mid.AbsorptionM2), Value: mid.RT60S, Unit: "s"},
	}
	res.Notes = "Sabine reverberation time per octave band against the room-type maximum."
	return res, nil
}
