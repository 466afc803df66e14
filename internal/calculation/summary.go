package calculation

import (
	"math"

	"github.com/rpgo/investment-projector/internal/domain"
)

// FinalTotals reads the summary off the last snapshot. An empty series yields zeros.
func FinalTotals(snapshots []domain.Snapshot) domain.Summary {
	if len(snapshots) == 0 {
		return domain.Summary{}
	}
	last := snapshots[len(snapshots)-1]
	return domain.Summary{
		Total:    last.TotalValue,
		Real:     last.RealValue,
		Invested: last.InvestedCapital,
		Interest: last.AccumulatedInterest,
	}
}

// RealRateOfReturn is the annual real return in percent, from the closed-form Fisher
// relation. It does not depend on the horizon or the contribution.
func RealRateOfReturn(annualReturnPct, inflationPct float64) float64 {
	nominal := 1 + annualReturnPct/100
	inflation := 1 + inflationPct/100
	return (nominal/inflation - 1) * 100
}

// AnnualizedRealRate compounds a monthly rate over 12 months and returns it in percent.
func AnnualizedRealRate(monthly float64) float64 {
	return (math.Pow(1+monthly, 12) - 1) * 100
}
