package copperloss

import (
	"fmt"
	"math"

	core "Conduit/internal/calc/core"
)

type Segment struct {
	Name          string  `json:"name"`
	DesignAmps    float64 `json:"design_amps"`
	CSAMM2        float64 `json:"csa_mm2"`
	LengthM       float64 `json:"length_m"`
	RatedAmps     float64 `json:"rated_amps"`     // optional, table value used when zero
	ResistanceMOm float64 `json:"resistance_mom"` // optional mOhm/m override, table used when zero
}

type Input struct {
	Circuit     CircuitType `json:"circuit"`
	VoltageV    float64     `json:"voltage_v"`    // optional, 400 V when zero
	PowerFactor float64     `json:"power_factor"` // optional, 0.85 when zero
	Trunk       Segment     `json:"trunk"`
	Branches    []Segment   `json:"branches"`
}

type SegmentLoss struct {
	Name          string  `json:"name"`
	CSAMM2        float64 `json:"csa_mm2"`
	ResistanceMOm float64 `json:"resistance_mom"`
	OperatingC    float64 `json:"operating_c"`
	LossW         float64 `json:"loss_w"`
}

type Result struct {
	TrunkLossW      float64       `json:"trunk_loss_w"`
	BranchLossW     float64       `json:"branch_loss_w"`
	TotalLossW      float64       `json:"total_loss_w"`
	DiversityFactor float64       `json:"diversity_factor"`
	TransferredKW   float64       `json:"transferred_kw"`
	LossPct         float64       `json:"loss_pct"`
	LossLimitPct    float64       `json:"loss_limit_pct"`
	Compliant       bool          `json:"compliant"` // loss_pct <= loss_limit_pct
	Segments        []SegmentLoss `json:"segments"`
	Steps           []core.Step   `json:"steps"`
	Notes           string        `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if err := validateSegment("trunk", in.Trunk); err != nil {
		return Result{}, err
	}
	for _, b := range in.Branches {
		if err := validateSegment("branch "+b.Name, b); err != nil {
			return Result{}, err
		}
	}
	limit, ok := lossLimitPctByCircuit[in.Circuit]
	if !ok {
		return Result{}, core.UnknownKeyf("circuit loss limits", string(in.Circuit))
	}
	if in.VoltageV <= 0 {
		in.VoltageV = 400
	}
	if in.PowerFactor <= 0 {
		in.PowerFactor = 0.85
	}

	branchSum := 0.0
	for _, b := range in.Branches {
		branchSum += b.DesignAmps
	}
	diversity := core.DiversityFactor(in.Trunk.DesignAmps, branchSum)

	res := Result{DiversityFactor: diversity, LossLimitPct: limit}

	trunk := segmentLoss(in.Trunk, 1.0)
	res.TrunkLossW = trunk.LossW
	res.Segments = append(res.Segments, trunk)
	res.Steps = append(res.Steps, core.Step{
		Label:   "Trunk copper loss",
		Formula: lossFormula(in.Trunk.DesignAmps, trunk.ResistanceMOm, in.Trunk.LengthM),
		Value:   trunk.LossW,
		Unit:    "W",
	})

	for _, b := range in.Branches {
		s := segmentLoss(b, diversity)
		res.BranchLossW += s.LossW
		res.Segments = append(res.Segments, s)
		res.Steps = append(res.Steps, core.Step{
			Label:   "Branch copper loss: " + b.Name,
			Formula: lossFormula(b.DesignAmps*diversity, s.ResistanceMOm, b.LengthM),
			Value:   s.LossW,
			Unit:    "W",
		})
	}
	res.TotalLossW = res.TrunkLossW + res.BranchLossW

	res.TransferredKW = math.Sqrt(3) * in.VoltageV * in.Trunk.DesignAmps * in.PowerFactor / 1000
	res.LossPct = res.TotalLossW / (res.TransferredKW * 1000) * 100
	res.Compliant = res.LossPct <= limit

	res.Steps = append(res.Steps,
		core.Step{Label: "Diversity factor", Formula: fmt.Sprintf("min(%.1f / %.1f, 1)", in.Trunk.DesignAmps, branchSum), Value: diversity, Unit: ""},
		core.Step{Label: "Transferred power", Formula: fmt.Sprintf("sqrt(3) x %.0f x %.1f x %.2f / 1000", in.VoltageV, in.Trunk.DesignAmps, in.PowerFactor), Value: res.TransferredKW, Unit: "kW"},
		core.Step{Label: "Loss ratio", Formula: fmt.Sprintf("%.1f / %.1f x 100", res.TotalLossW, res.TransferredKW*1000), Value: res.LossPct, Unit: "%"},
	)
	res.Notes = "Three-phase copper loss with branch diversity; resistance corrected to conductor operating temperature."
	return res, nil
}

func validateSegment(name string, s Segment) error {
	if s.DesignAmps <= 0 {
		return core.Invalidf("%s: design current must be positive", name)
	}
	if s.LengthM <= 0 {
		return core.Invalidf("%s: length must be positive", name)
	}
	if s.CSAMM2 <= 0 && s.ResistanceMOm <= 0 {
		return core.Invalidf("%s: cross-section or resistance required", name)
	}
	return nil
}

// segmentLoss resolves the segment resistance (table lookup, temperature
// corrected) and returns the three-phase loss with the diversity factor
// applied to the branch current. An explicit resistance override is taken
// as-is, the temperature correction applies only to tabulated values.
func segmentLoss(s Segment, diversity float64) SegmentLoss {
	ib := s.DesignAmps * diversity

	if s.ResistanceMOm > 0 {
		return SegmentLoss{
			Name:          s.Name,
			CSAMM2:        s.CSAMM2,
			ResistanceMOm: s.ResistanceMOm,
			OperatingC:    maxOperatingC,
			LossW:         3 * ib * ib * s.ResistanceMOm * s.LengthM / 1000,
		}
	}

	csa := core.NearestSize(tabulatedSizes, s.CSAMM2)
	r := resistanceByCSA[csa]
	iz := s.RatedAmps
	if iz <= 0 {
		iz = ratedCurrentByCSA[csa]
	}

	operating := core.OperatingTemp(ambientC, maxOperatingC, ib, iz)
	r = core.CorrectResistance(r, ib, operating, maxOperatingC)

	return SegmentLoss{
		Name:          s.Name,
		CSAMM2:        csa,
		ResistanceMOm: r,
		OperatingC:    operating,
		LossW:         3 * ib * ib * r * s.LengthM / 1000,
	}
}

func lossFormula(ib, r, l float64) string {
	return fmt.Sprintf("3 x %.1f^2 x %.3f x %.1f / 1000", ib, r, l)
}
