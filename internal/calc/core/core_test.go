package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestSize(t *testing.T) {
	sizes := []float64{1.5, 2.5, 4, 6, 10, 16}

	tests := []struct {
		name string
		want float64
		got  float64
	}{
		{name: "exact hit", want: 4, got: NearestSize(sizes, 4)},
		{name: "closest above", want: 6, got: NearestSize(sizes, 5.5)},
		{name: "closest below", want: 4, got: NearestSize(sizes, 4.4)},
		{name: "tie resolves to smaller", want: 4, got: NearestSize(sizes, 5)},
		{name: "below range clamps to smallest", want: 1.5, got: NearestSize(sizes, 0.75)},
		{name: "above range clamps to largest", want: 16, got: NearestSize(sizes, 400)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestDiversityFactor(t *testing.T) {
	tests := []struct {
		name      string
		trunk     float64
		branchSum float64
		want      float64
	}{
		{name: "zero branch sum means no reduction", trunk: 100, branchSum: 0, want: 1},
		{name: "trunk above branch sum capped at one", trunk: 150, branchSum: 100, want: 1},
		{name: "proportional below one", trunk: 80, branchSum: 100, want: 0.8},
		{name: "negative trunk clamps to zero", trunk: -5, branchSum: 100, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiversityFactor(tt.trunk, tt.branchSum)
			assert.InDelta(t, tt.want, got, 1e-12)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestOperatingTemp(t *testing.T) {
	// Half-loaded cable sits a quarter of the way between ambient and max.
	got := OperatingTemp(30, 70, 50, 100)
	assert.InDelta(t, 40, got, 1e-9)

	// Overload never reports above the insulation limit.
	assert.InDelta(t, 70, OperatingTemp(30, 70, 200, 100), 1e-9)

	// No load, no heating.
	assert.InDelta(t, 30, OperatingTemp(30, 70, 0, 100), 1e-9)
}

func TestCorrectResistance(t *testing.T) {
	// Zero design current must return the base coefficient unchanged.
	assert.Equal(t, 1.4, CorrectResistance(1.4, 0, 40, 70))

	// Cooler than the tabulation temperature lowers the resistance.
	got := CorrectResistance(1.4, 50, 40, 70)
	assert.InDelta(t, 1.4*270/300, got, 1e-9)
	assert.Less(t, got, 1.4)
}
