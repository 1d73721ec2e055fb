package copperloss

// Copper conductor resistance in mOhm/m, tabulated at the 70C max operating
// temperature of PVC insulation, keyed by cross-section in mm2.
// Numeric lookup policy: nearest tabulated size, ties to the smaller size.
var resistanceByCSA = map[float64]float64{
	1.5: 14.8,
	2.5: 8.89,
	4:   5.55,
	6:   3.7,
	10:  2.24,
	16:  1.4,
	25:  0.889,
	35:  0.641,
	50:  0.473,
	70:  0.328,
	95:  0.236,
	120: 0.188,
	150: 0.153,
	185: 0.123,
	240: 0.0943,
	300: 0.0761,
}

// Rated current-carrying capacity in A for three-loaded-conductor copper
// cable on tray, same keys as resistanceByCSA. Used to estimate the
// conductor operating temperature when the caller does not supply a rating.
var ratedCurrentByCSA = map[float64]float64{
	1.5: 17.5,
	2.5: 24,
	4:   32,
	6:   41,
	10:  57,
	16:  76,
	25:  101,
	35:  125,
	50:  151,
	70:  192,
	95:  232,
	120: 269,
	150: 309,
	185: 353,
	240: 415,
	300: 477,
}

var tabulatedSizes = []float64{
	1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300,
}

type CircuitType string

const (
	CircuitFeeder    CircuitType = "feeder"
	CircuitSubfeeder CircuitType = "subfeeder"
	CircuitFinal     CircuitType = "final"
)

// Maximum copper loss as a percentage of transferred power, by circuit type.
// Unknown circuit types are a hard error, not a default.
var lossLimitPctByCircuit = map[CircuitType]float64{
	CircuitFeeder:    1.0,
	CircuitSubfeeder: 2.5,
	CircuitFinal:     4.0,
}

const (
	ambientC      = 30.0
	maxOperatingC = 70.0
)
