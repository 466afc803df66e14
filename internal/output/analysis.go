package output

import (
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/pkg/decimal"
	"github.com/samber/lo"
)

// Recommendation encapsulates the scenario that ends with the most purchasing power.
type Recommendation struct {
	ScenarioName string
	FinalReal    int64
	FinalTotal   int64
	// InflationLoss is the part of the nominal total that inflation erodes.
	InflationLoss int64
}

// AnalyzeScenarios picks the scenario with the highest final real value. Ties keep
// configuration order.
func AnalyzeScenarios(report *domain.ProjectionReport) Recommendation {
	if report == nil || len(report.Scenarios) == 0 {
		return Recommendation{}
	}
	best := lo.MaxBy(report.Scenarios, func(a, b domain.ProjectionResult) bool {
		return a.Summary.Real > b.Summary.Real
	})
	loss := decimal.NewMoneyFromUnits(best.Summary.Total).Sub(decimal.NewMoneyFromUnits(best.Summary.Real))
	return Recommendation{
		ScenarioName:  best.Name,
		FinalReal:     best.Summary.Real,
		FinalTotal:    best.Summary.Total,
		InflationLoss: loss.Units(),
	}
}
