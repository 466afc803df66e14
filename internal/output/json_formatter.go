package output

import (
	"encoding/json"

	"github.com/rpgo/investment-projector/internal/domain"
)

// JSONFormatter serializes the projection report as pretty-printed JSON. Snapshot fields
// use the chart keys (year, investedCapital, accumulatedInterest, totalValue, realValue).
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
