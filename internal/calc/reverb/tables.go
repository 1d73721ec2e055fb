package reverb

// Octave band centre frequencies carried through every absorption
// computation, in Hz. Index 2 (500 Hz) is the reported mid-frequency value.
var Bands = []int{125, 250, 500, 1000, 2000, 4000}

const midBand = 2 // 500 Hz

// Sound absorption coefficients per material, one per octave band.
// Unknown materials are a hard error, not a default.
var absorptionByMaterial = map[string][6]float64{
	"concrete":        {0.01, 0.01, 0.02, 0.02, 0.02, 0.03},
	"brick":           {0.03, 0.03, 0.03, 0.04, 0.05, 0.07},
	"plaster":         {0.14, 0.10, 0.06, 0.05, 0.04, 0.03},
	"gypsum-board":    {0.29, 0.10, 0.05, 0.04, 0.07, 0.09},
	"glass":           {0.18, 0.06, 0.04, 0.03, 0.02, 0.02},
	"wood-floor":      {0.15, 0.11, 0.10, 0.07, 0.06, 0.07},
	"carpet":          {0.08, 0.24, 0.57, 0.69, 0.71, 0.73},
	"acoustic-tile":   {0.29, 0.38, 0.64, 0.82, 0.88, 0.85},
	"curtain-heavy":   {0.14, 0.35, 0.55, 0.72, 0.70, 0.65},
	"mineral-wool-50": {0.20, 0.65, 0.95, 0.98, 0.92, 0.88},
}

// Absorption area per seated person in m2 sabins, per octave band.
var personAbsorption = [6]float64{0.25, 0.35, 0.42, 0.46, 0.50, 0.50}

// Maximum acceptable mid-frequency RT60 by room type, in seconds.
var maxRT60ByRoom = map[string]float64{
	"classroom":  0.7,
	"conference": 0.8,
	"office":     0.9,
	"auditorium": 1.2,
	"worship":    2.0,
	"studio":     0.4,
	"atrium":     2.5,
}
