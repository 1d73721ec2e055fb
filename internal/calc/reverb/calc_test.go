package reverb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "Conduit/internal/calc/core"
)

func TestCalculateSabine(t *testing.T) {
	// 10 x 7 x 3 room, 100 m2 of carpet: A(500) = 100 x 0.57 = 57 m2,
	// RT60 = 0.161 x 210 / 57.
	in := Input{
		Room:     "classroom",
		VolumeM3: 210,
		Surfaces: []Surface{{Name: "floor", Material: "carpet", AreaM2: 100}},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	require.Len(t, res.Bands, 6)
	mid := res.Bands[2]
	assert.Equal(t, 500, mid.FrequencyHz)
	assert.InDelta(t, 57, mid.AbsorptionM2, 1e-9)
	assert.InDelta(t, 0.161*210/57, res.MidRT60S, 1e-9)
	assert.True(t, res.Compliant) // 0.593 s <= 0.7 s classroom max
}

func TestCalculateAudienceAbsorption(t *testing.T) {
	base := Input{
		Room:     "auditorium",
		VolumeM3: 1200,
		Surfaces: []Surface{{Name: "walls", Material: "plaster", AreaM2: 400}},
	}
	empty, err := Calculate(base)
	require.NoError(t, err)

	seated := base
	seated.PersonCount = 200
	full, err := Calculate(seated)
	require.NoError(t, err)

	// 200 people add 200 x 0.42 = 84 m2 at 500 Hz.
	assert.InDelta(t, empty.Bands[2].AbsorptionM2+84, full.Bands[2].AbsorptionM2, 1e-9)
	assert.Less(t, full.MidRT60S, empty.MidRT60S)
}

func TestCalculateBandsAreIndependent(t *testing.T) {
	in := Input{
		Room:     "conference",
		VolumeM3: 150,
		Surfaces: []Surface{{Name: "ceiling", Material: "acoustic-tile", AreaM2: 50}},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	// Tile absorbs far more at 4 kHz than at 125 Hz, so RT60 drops with
	// frequency for this single-material room.
	assert.Greater(t, res.Bands[0].RT60S, res.Bands[5].RT60S)
	for _, b := range res.Bands {
		assert.False(t, b.NotComputable)
		assert.Greater(t, b.RT60S, 0.0)
	}
}

func TestCalculateRejects(t *testing.T) {
	_, err := Calculate(Input{Room: "cave", VolumeM3: 100, Surfaces: []Surface{{Material: "brick", AreaM2: 10}}})
	assert.ErrorIs(t, err, core.ErrUnknownKey)

	_, err = Calculate(Input{Room: "office", VolumeM3: 100, Surfaces: []Surface{{Material: "velvet", AreaM2: 10}}})
	assert.ErrorIs(t, err, core.ErrUnknownKey)

	_, err = Calculate(Input{Room: "office", VolumeM3: 0, Surfaces: []Surface{{Material: "brick", AreaM2: 10}}})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = Calculate(Input{Room: "office", VolumeM3: 100})
	assert.ErrorIs(t, err, core.ErrInvalidInput)
}
