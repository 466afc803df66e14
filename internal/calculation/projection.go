package calculation

import (
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/pkg/decimal"
)

// emitFunc reports whether month m (1-based) produces a snapshot, and its period number.
type emitFunc func(month int) (period int, ok bool)

func emitterFor(g domain.Granularity) emitFunc {
	if g == domain.Monthly {
		return func(month int) (int, bool) { return month, true }
	}
	return func(month int) (int, bool) {
		if month%12 != 0 {
			return 0, false
		}
		return month / 12, true
	}
}

// GenerateProjection runs the monthly recurrence for the input horizon and samples it at
// the input granularity. Each month interest accrues on the balance before the deposit,
// then interest and deposit are added together (end-of-period deposits). The real track
// uses the same deposit, undeflated, with the real monthly rate.
//
// Every reported field is rounded on its own, so AccumulatedInterest may differ by one
// unit from TotalValue - InvestedCapital.
func GenerateProjection(in domain.ProjectionInput) []domain.Snapshot {
	months := in.TotalMonths()
	emit := emitterFor(in.Granularity)
	rates := ConvertRates(in.AnnualReturnRate, in.InflationRate)

	capacity := months
	if in.Granularity != domain.Monthly {
		capacity = months / 12
	}
	snapshots := make([]domain.Snapshot, 0, capacity)

	var nominal, realValue float64
	for month := 1; month <= months; month++ {
		nominal += in.MonthlyContribution + nominal*rates.Return
		realValue += in.MonthlyContribution + realValue*rates.RealReturn

		period, ok := emit(month)
		if !ok {
			continue
		}
		invested := in.MonthlyContribution * float64(month)
		snapshots = append(snapshots, domain.Snapshot{
			Period:              period,
			InvestedCapital:     decimal.RoundUnits(invested),
			AccumulatedInterest: decimal.RoundUnits(nominal - invested),
			TotalValue:          decimal.RoundUnits(nominal),
			RealValue:           decimal.RoundUnits(realValue),
		})
	}
	return snapshots
}
