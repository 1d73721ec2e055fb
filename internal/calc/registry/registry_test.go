package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Conduit/internal/calc/voltdrop"
)

func TestEvaluate(t *testing.T) {
	raw := json.RawMessage(`{"circuit":"power","design_amps":40,"csa_mm2":16,"length_m":60}`)
	res, err := Evaluate(KindVoltDrop, raw)
	require.NoError(t, err)

	vd, ok := res.(voltdrop.Result)
	require.True(t, ok)
	assert.InDelta(t, 5.76, vd.DropV, 1e-9)
}

func TestEvaluateUnknownKind(t *testing.T) {
	_, err := Evaluate(Kind("hvac"), json.RawMessage(`{}`))
	assert.Error(t, err)
}

func TestEvaluateBadInput(t *testing.T) {
	_, err := Evaluate(KindVoltDrop, json.RawMessage(`{"design_amps":"forty"}`))
	assert.Error(t, err)
}

func TestKindsAreAllDispatchable(t *testing.T) {
	for _, k := range Kinds() {
		// Empty inputs must reach the calculator and be rejected there,
		// not fall through the dispatch.
		_, err := Evaluate(k, json.RawMessage(`{}`))
		assert.Error(t, err, "kind %s", k)
	}
}
