// Package registry enumerates the calculator kinds and dispatches a raw JSON
// input to the matching typed evaluator. The CLI and the batch endpoint both
// go through here so every front-end sees identical semantics.
package registry

import (
	"encoding/json"
	"fmt"

	"Conduit/internal/calc/copperloss"
	"Conduit/internal/calc/coverage"
	"Conduit/internal/calc/drainage"
	"Conduit/internal/calc/lighting"
	"Conduit/internal/calc/projector"
	"Conduit/internal/calc/rainwater"
	"Conduit/internal/calc/reverb"
	"Conduit/internal/calc/spl"
	"Conduit/internal/calc/voltdrop"
)

type Kind string

const (
	KindCopperLoss Kind = "copperloss"
	KindVoltDrop   Kind = "voltdrop"
	KindLighting   Kind = "lighting"
	KindSPL        Kind = "spl"
	KindCoverage   Kind = "coverage"
	KindReverb     Kind = "reverb"
	KindProjector  Kind = "projector"
	KindDrainage   Kind = "drainage"
	KindRainwater  Kind = "rainwater"
)

// Kinds lists every registered calculator in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindCopperLoss, KindVoltDrop, KindLighting,
		KindSPL, KindCoverage, KindReverb, KindProjector,
		KindDrainage, KindRainwater,
	}
}

// Evaluate decodes raw into the input type of the named calculator and runs
// it. The result is the calculator's own Result struct.
func Evaluate(kind Kind, raw json.RawMessage) (any, error) {
	switch kind {
	case KindCopperLoss:
		return run(raw, copperloss.Calculate)
	case KindVoltDrop:
		return run(raw, voltdrop.Calculate)
	case KindLighting:
		return run(raw, lighting.Calculate)
	case KindSPL:
		return run(raw, spl.Calculate)
	case KindCoverage:
		return run(raw, coverage.Calculate)
	case KindReverb:
		return run(raw, reverb.Calculate)
	case KindProjector:
		return run(raw, projector.Calculate)
	case KindDrainage:
		return run(raw, drainage.Calculate)
	case KindRainwater:
		return run(raw, rainwater.Calculate)
	default:
		return nil, fmt.Errorf("unknown calculator kind %q", kind)
	}
}

func run[I, R any](raw json.RawMessage, calc func(I) (R, error)) (any, error) {
	var in I
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}
	res, err := calc(in)
	if err != nil {
		return nil, err
	}
	return res, nil
}
