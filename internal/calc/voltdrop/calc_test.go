package voltdrop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "Conduit/internal/calc/core"
)

func TestCalculate(t *testing.T) {
	// 2.4 mV/A/m x 40 A x 60 m / 1000 = 5.76 V = 1.44 % of 400 V.
	in := Input{Circuit: CircuitPower, DesignAmps: 40, CSAMM2: 16, LengthM: 60}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, 16.0, res.CSAMM2)
	assert.InDelta(t, 5.76, res.DropV, 1e-9)
	assert.InDelta(t, 1.44, res.DropPct, 1e-9)
	assert.Equal(t, 5.0, res.DropLimitPct)
	assert.True(t, res.Compliant)
	assert.Len(t, res.Steps, 2)
}

func TestCalculateNearestSize(t *testing.T) {
	tests := []struct {
		name    string
		csa     float64
		wantCSA float64
	}{
		{name: "exact size keeps its coefficient", csa: 25, wantCSA: 25},
		{name: "between sizes picks the closer", csa: 12, wantCSA: 10},
		{name: "midpoint tie goes to the smaller", csa: 30, wantCSA: 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Calculate(Input{Circuit: CircuitPower, DesignAmps: 10, CSAMM2: tt.csa, LengthM: 10})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCSA, res.CSAMM2)
			assert.Equal(t, mvamByCSA[tt.wantCSA], res.MVAM)
		})
	}
}

func TestCalculateLimitDirection(t *testing.T) {
	// A long small lighting run drops well past 3 %.
	in := Input{Circuit: CircuitLighting, DesignAmps: 16, CSAMM2: 1.5, LengthM: 40}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 16.0, res.DropV, 1e-9) // 25 x 16 x 40 / 1000
	assert.InDelta(t, 4.0, res.DropPct, 1e-9)
	assert.False(t, res.Compliant)
	assert.Equal(t, res.Compliant, res.DropPct <= res.DropLimitPct)
}

func TestCalculateRejects(t *testing.T) {
	base := Input{Circuit: CircuitPower, DesignAmps: 10, CSAMM2: 2.5, LengthM: 10}

	in := base
	in.DesignAmps = 0
	_, err := Calculate(in)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	in = base
	in.LengthM = -1
	_, err = Calculate(in)
	assert.ErrorIs(t, err, core.ErrInvalidInput)

	in = base
	in.Circuit = CircuitType("motor")
	_, err = Calculate(in)
	assert.ErrorIs(t, err, core.ErrUnknownKey)
}
