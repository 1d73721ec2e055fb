package drainage

// Drainage fixture units per fixture type. Unknown fixture types are a hard
// error, not a default.
var dfuByFixture = map[string]float64{
	"wc":                4,
	"urinal":            4,
	"lavatory":          1,
	"shower":            2,
	"bathtub":           2,
	"bidet":             1,
	"kitchen-sink":      2,
	"service-sink":      3,
	"dishwasher":        2,
	"washing-machine":   3,
	"floor-drain":       2,
	"drinking-fountain": 0.5,
}

// Horizontal branch capacity in fixture units by pipe diameter (mm) and
// gradient (percent). A zero entry means the combination is not permitted.
var capacityBySlope = map[int]map[float64]float64{
	1: {40: 0, 50: 0, 75: 20, 100: 180, 150: 700},
	2: {40: 3, 50: 6, 75: 27, 100: 216, 150: 840},
	4: {40: 4, 50: 8, 75: 36, 100: 250, 150: 1000},
}

var tabulatedDiameters = []float64{40, 50, 75, 100, 150}
