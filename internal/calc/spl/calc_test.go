package spl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "Conduit/internal/calc/core"
)

func TestCalculateInverseSquare(t *testing.T) {
	// 90 dB/W/m at 10 W: 90 + 10 x log10(10) = 100 dB at 1 m,
	// minus 20 x log10(10) = 80 dB at 10 m.
	in := Input{
		Application:   AppPaging,
		SensitivityDB: 90,
		TapPowerW:     10,
		DistanceM:     10,
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 100, res.SPLAt1mDB, 1e-9)
	assert.InDelta(t, 80, res.SPLDB, 1e-9)
	assert.Equal(t, 80.0, res.TargetDB)
	assert.True(t, res.Compliant) // adequacy: spl >= target
	assert.InDelta(t, 0, res.HeadroomDB, 1e-9)
}

func TestCalculateAtReferenceDistance(t *testing.T) {
	in := Input{
		Application:   AppBackground,
		SensitivityDB: 90,
		TapPowerW:     10,
		DistanceM:     1,
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.InDelta(t, 100, res.SPLDB, 1e-9)
}

func TestCalculateModelPreset(t *testing.T) {
	in := Input{
		Application: AppBackground,
		Model:       "ceiling-10w",
		TapPowerW:   1,
		DistanceM:   1,
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 90.0, res.SensitivityDB)
	assert.InDelta(t, 90, res.SPLDB, 1e-9)
}

func TestCalculateMultiSpeaker(t *testing.T) {
	single := Input{Application: AppPaging, SensitivityDB: 90, TapPowerW: 10, DistanceM: 10}
	double := single
	double.SpeakerCount = 2

	one, err := Calculate(single)
	require.NoError(t, err)
	two, err := Calculate(double)
	require.NoError(t, err)

	// Doubling coherent sources adds 10 x log10(2) ~ 3 dB.
	assert.InDelta(t, 3.0103, two.SPLDB-one.SPLDB, 1e-3)
}

func TestCalculateRejects(t *testing.T) {
	_, err := Calculate(Input{Application: AppPaging, SensitivityDB: 90, TapPowerW: 0, DistanceM: 5})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = Calculate(Input{Application: AppPaging, SensitivityDB: 90, TapPowerW: 10, DistanceM: -2})
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	_, err = Calculate(Input{Application: Application("ambience"), SensitivityDB: 90, TapPowerW: 10, DistanceM: 5})
	assert.ErrorIs(t, err, core.ErrUnknownKey)

	_, err = Calculate(Input{Application: AppPaging, Model: "ceiling-99w", TapPowerW: 10, DistanceM: 5})
	assert.ErrorIs(t, err, core.ErrUnknownKey)
}
