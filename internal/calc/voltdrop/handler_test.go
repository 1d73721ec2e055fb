package voltdrop

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}

	body := `{"circuit":"power","design_amps":40,"csa_mm2":16,"length_m":60}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/voltdrop/calc", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var res Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 5.76, res.DropV, 1e-9)
	assert.True(t, res.Compliant)
}

func TestHandlerCalcRejects(t *testing.T) {
	h := &Handler{}

	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/voltdrop/calc", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Calc(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/user/tools/voltdrop/calc",
		strings.NewReader(`{"circuit":"power","design_amps":0,"csa_mm2":16,"length_m":60}`))
	rec = httptest.NewRecorder()
	h.Calc(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "design current")
}
