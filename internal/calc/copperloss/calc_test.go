package copperloss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "Conduit/internal/calc/core"
)

func TestCalculateTrunkOnly(t *testing.T) {
	// 100 A on 1.4 mOhm/m over 50 m: 3 x 100^2 x 1.4 x 50 / 1000 = 2100 W.
	in := Input{
		Circuit: CircuitFeeder,
		Trunk:   Segment{Name: "main", DesignAmps: 100, ResistanceMOm: 1.4, LengthM: 50},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	assert.InDelta(t, 2100, res.TrunkLossW, 1e-9)
	assert.InDelta(t, 2100, res.TotalLossW, 1e-9)
	assert.Equal(t, 1.0, res.DiversityFactor)
	assert.Len(t, res.Segments, 1)
	require.NotEmpty(t, res.Steps)
	assert.Equal(t, "Trunk copper loss", res.Steps[0].Label)
	assert.Equal(t, "W", res.Steps[0].Unit)
}

func TestCalculateDiversity(t *testing.T) {
	in := Input{
		Circuit: CircuitSubfeeder,
		Trunk:   Segment{Name: "riser", DesignAmps: 80, ResistanceMOm: 0.5, LengthM: 20},
		Branches: []Segment{
			{Name: "b1", DesignAmps: 60, ResistanceMOm: 1.0, LengthM: 10},
			{Name: "b2", DesignAmps: 40, ResistanceMOm: 1.0, LengthM: 10},
		},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	// 80 / (60 + 40) = 0.8 applied to each branch current.
	assert.InDelta(t, 0.8, res.DiversityFactor, 1e-12)
	wantB1 := 3 * (60 * 0.8) * (60 * 0.8) * 1.0 * 10 / 1000
	wantB2 := 3 * (40 * 0.8) * (40 * 0.8) * 1.0 * 10 / 1000
	assert.InDelta(t, wantB1+wantB2, res.BranchLossW, 1e-9)
	assert.InDelta(t, res.TrunkLossW+res.BranchLossW, res.TotalLossW, 1e-9)
}

func TestCalculateTableLookup(t *testing.T) {
	// 15 mm2 is not tabulated; nearest size is 16 mm2. With no design
	// current heating margin the resistance stays temperature corrected
	// below the 70C tabulation.
	in := Input{
		Circuit: CircuitFinal,
		Trunk:   Segment{Name: "run", DesignAmps: 20, CSAMM2: 15, LengthM: 30},
	}
	res, err := Calculate(in)
	require.NoError(t, err)
	require.Len(t, res.Segments, 1)
	assert.Equal(t, 16.0, res.Segments[0].CSAMM2)
	assert.Less(t, res.Segments[0].ResistanceMOm, resistanceByCSA[16.0])
}

func TestCalculateCompliance(t *testing.T) {
	in := Input{
		Circuit: CircuitFeeder, // 1 % limit
		Trunk:   Segment{Name: "main", DesignAmps: 100, ResistanceMOm: 1.4, LengthM: 50},
	}
	res, err := Calculate(in)
	require.NoError(t, err)

	// Transferred: sqrt(3) x 400 x 100 x 0.85 = 58.89 kW; 2100 W is 3.57 %.
	assert.False(t, res.Compliant)
	assert.Greater(t, res.LossPct, res.LossLimitPct)

	in.Circuit = CircuitFinal // 4 % limit
	res, err = Calculate(in)
	require.NoError(t, err)
	assert.True(t, res.Compliant)
}

func TestCalculatePurity(t *testing.T) {
	in := Input{
		Circuit: CircuitSubfeeder,
		Trunk:   Segment{Name: "riser", DesignAmps: 63, CSAMM2: 25, LengthM: 40},
		Branches: []Segment{
			{Name: "b1", DesignAmps: 32, CSAMM2: 10, LengthM: 15},
		},
	}
	first, err := Calculate(in)
	require.NoError(t, err)
	second, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCalculateRejects(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want error
	}{
		{
			name: "unknown circuit type",
			in: Input{
				Circuit: CircuitType("branch"),
				Trunk:   Segment{DesignAmps: 10, CSAMM2: 2.5, LengthM: 5},
			},
			want: core.ErrUnknownKey,
		},
		{
			name: "zero trunk current",
			in: Input{
				Circuit: CircuitFeeder,
				Trunk:   Segment{DesignAmps: 0, CSAMM2: 2.5, LengthM: 5},
			},
			want: core.ErrInvalidInput,
		},
		{
			name: "branch without geometry",
			in: Input{
				Circuit:  CircuitFeeder,
				Trunk:    Segment{DesignAmps: 10, CSAMM2: 2.5, LengthM: 5},
				Branches: []Segment{{Name: "b1", DesignAmps: 5, LengthM: 0, CSAMM2: 2.5}},
			},
			want: core.ErrInvalidInput,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
