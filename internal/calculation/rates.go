package calculation

import "math"

// MonthlyRates holds the effective monthly rates derived from annual percentages.
type MonthlyRates struct {
	Return     float64 `json:"return"`
	Inflation  float64 `json:"inflation"`
	RealReturn float64 `json:"real_return"`
}

// EffectiveMonthlyRate converts an annual percentage to the monthly rate that compounds
// to it over 12 months. annualPct must be above -100.
func EffectiveMonthlyRate(annualPct float64) float64 {
	if annualPct == 0 {
		return 0
	}
	return math.Pow(1+annualPct/100, 1.0/12) - 1
}

// ConvertRates derives the monthly nominal, inflation and real rates. The real rate is the
// Fisher quotient of the two growth factors, not their difference.
func ConvertRates(annualReturnPct, inflationPct float64) MonthlyRates {
	r := EffectiveMonthlyRate(annualReturnPct)
	i := EffectiveMonthlyRate(inflationPct)
	return MonthlyRates{
		Return:     r,
		Inflation:  i,
		RealReturn: (1+r)/(1+i) - 1,
	}
}
