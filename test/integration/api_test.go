package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/investment-projector/internal/api"
	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestProjectionOverHTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(api.NewRouter(calculation.NewCalculationEngine(), zap.NewNop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/projection?monthlyContribution=500&annualReturnRate=7&inflationRate=3&investmentPeriod=1")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var result domain.ProjectionResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.Len(t, result.Snapshots, 1)
	assert.Equal(t, domain.Snapshot{Period: 1, InvestedCapital: 6000, AccumulatedInterest: 190, TotalValue: 6190, RealValue: 6106}, result.Snapshots[0])
	assert.Equal(t, calculation.Project(result.Input).Summary, result.Summary)
}

func TestProjectionOverHTTPRejectsBadInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(api.NewRouter(calculation.NewCalculationEngine(), zap.NewNop()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/projection?granularity=weekly")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
