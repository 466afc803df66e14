package calculation

import (
	"testing"

	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFinalTotals(t *testing.T) {
	snapshots := []domain.Snapshot{
		{Period: 1, InvestedCapital: 6000, AccumulatedInterest: 190, TotalValue: 6190, RealValue: 6106},
		{Period: 2, InvestedCapital: 12000, AccumulatedInterest: 819, TotalValue: 12819, RealValue: 12466},
	}
	assert.Equal(t, domain.Summary{Total: 12819, Real: 12466, Invested: 12000, Interest: 819}, FinalTotals(snapshots))
}

func TestFinalTotalsEmpty(t *testing.T) {
	assert.Equal(t, domain.Summary{}, FinalTotals(nil))
	assert.Equal(t, domain.Summary{}, FinalTotals([]domain.Snapshot{}))
}

func TestRealRateOfReturn(t *testing.T) {
	assert.Equal(t, 0.0, RealRateOfReturn(5, 5))
	assert.InDelta(t, 3.883495145631, RealRateOfReturn(7, 3), 1e-9)
	assert.InDelta(t, -2.912621359223, RealRateOfReturn(0, 3), 1e-9)
	assert.Equal(t, 0.0, RealRateOfReturn(0, 0))
}

func TestRealRateOfReturnMatchesCompoundedMonthlyRate(t *testing.T) {
	pairs := [][2]float64{{7, 3}, {12.5, 2.1}, {0, 4}, {20, 15}, {1, 0}}
	for _, p := range pairs {
		closed := RealRateOfReturn(p[0], p[1])
		numeric := AnnualizedRealRate(ConvertRates(p[0], p[1]).RealReturn)
		assert.InEpsilon(t, closed, numeric, 1e-9, "return=%v inflation=%v", p[0], p[1])
	}

	// nominal equal to inflation: both are zero, relative tolerance is meaningless
	assert.InDelta(t, 0, AnnualizedRealRate(ConvertRates(5, 5).RealReturn), 1e-12)
}
