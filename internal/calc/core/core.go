// Package core holds the pieces shared by every calculator: the audit trace
// record, the error sentinels and the handful of helpers (nearest-size lookup,
// diversity factor, temperature correction) that the electrical tools repeat.
package core

import (
	"errors"
	"fmt"
)

// Step is one line of the calculation trace shown to the user and rendered
// into reports. Value is always a finite number; degenerate cases are carried
// as explicit flags on the result struct, never as Inf/NaN here.
type Step struct {
	Label   string  `json:"label"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit"`
}

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnknownKey   = errors.New("unknown reference key")
)

// Invalidf wraps ErrInvalidInput with a field-level description.
func Invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidInput)...)
}

// UnknownKeyf wraps ErrUnknownKey naming the table and the missing key.
func UnknownKeyf(table, key string) error {
	return fmt.Errorf("%s: no entry for %q: %w", table, key, ErrUnknownKey)
}

// NearestSize resolves want against the tabulated sizes by absolute
// difference. Ties resolve to the smaller size. sizes must be sorted
// ascending and non-empty.
func NearestSize(sizes []float64, want float64) float64 {
	best := sizes[0]
	bestDiff := abs(want - best)
	for _, s := range sizes[1:] {
		d := abs(want - s)
		if d < bestDiff {
			best = s
			bestDiff = d
		}
	}
	return best
}

// DiversityFactor caps aggregate branch demand relative to the trunk's actual
// demand. Always in [0, 1]; a zero branch sum means no diversity reduction.
func DiversityFactor(trunkA, branchSumA float64) float64 {
	if branchSumA <= 0 {
		return 1
	}
	f := trunkA / branchSumA
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// OperatingTemp estimates the conductor temperature at design current ib
// against rated capacity iz, between ambient and the max operating
// temperature of the insulation. Capped at maxC when overloaded.
func OperatingTemp(ambientC, maxC, ib, iz float64) float64 {
	if ib <= 0 || iz <= 0 {
		return ambientC
	}
	ratio := ib / iz
	t := ambientC + (maxC-ambientC)*ratio*ratio
	if t > maxC {
		return maxC
	}
	return t
}

// CorrectResistance applies the linear copper resistance-temperature law to a
// base value tabulated at tabC. A design current of zero or less returns the
// base unchanged.
func CorrectResistance(base, ib, operatingC, tabC float64) float64 {
	if ib <= 0 {
		return base
	}
	return base * (230 + operatingC) / (230 + tabC)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
