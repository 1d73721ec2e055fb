package coverage

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "Conduit/internal/calc/core"
)

func TestCalculate(t *testing.T) {
	// 3 m ceiling, 1.2 m seated plane, 90 degree cone:
	// r = 1.8 x tan(45) = 1.8 m, area = pi x 1.8^2.
	in := Input{CeilingHeightM: 3, ListeningPlaneM: 1.2, DispersionDeg: 90, RoomAreaM2: 100}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 1.8, res.RadiusM, 1e-9)
	assert.InDelta(t, math.Pi*1.8*1.8, res.AreaPerSpeakerM2, 1e-9)
	assert.Equal(t, 10, res.SpeakerCount) // ceil(100 / 10.178)
	assert.False(t, res.InfiniteCoverage)
}

func TestCalculateDefaultsListeningPlane(t *testing.T) {
	res, err := Calculate(Input{CeilingHeightM: 2.7, DispersionDeg: 90})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, res.RadiusM, 1e-9) // 2.7 - 1.2 seated default
	assert.Equal(t, 0, res.SpeakerCount)      // no room area given
}

func TestCalculateInfiniteDispersion(t *testing.T) {
	// tan(90) is undefined: 180 degrees is the explicit sentinel case,
	// never an IEEE infinity in the result.
	res, err := Calculate(Input{CeilingHeightM: 3, ListeningPlaneM: 1.2, DispersionDeg: 180, RoomAreaM2: 500})
	require.NoError(t, err)

	assert.True(t, res.InfiniteCoverage)
	assert.Equal(t, 0.0, res.RadiusM)
	assert.Equal(t, 1, res.SpeakerCount)
	assert.False(t, math.IsInf(res.RadiusM, 0))
}

func TestCalculateRejects(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{name: "zero ceiling", in: Input{CeilingHeightM: 0, DispersionDeg: 90}},
		{name: "plane above ceiling", in: Input{CeilingHeightM: 1.0, ListeningPlaneM: 1.5, DispersionDeg: 90}},
		{name: "zero dispersion", in: Input{CeilingHeightM: 3, DispersionDeg: 0}},
		{name: "dispersion beyond 180", in: Input{CeilingHeightM: 3, DispersionDeg: 200}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			assert.ErrorIs(t, err, core.ErrInvalidInput)
		})
	}
}
