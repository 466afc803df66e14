package domain

import "math"

// Bound is an inclusive range with an optional step.
type Bound struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step" json:"step"`
}

// Clamp restricts v to [Min, Max] and snaps it to the step grid anchored at Min.
func (b Bound) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return b.Min
	}
	if v < b.Min {
		v = b.Min
	}
	if v > b.Max {
		v = b.Max
	}
	if b.Step > 0 {
		v = b.Min + math.Round((v-b.Min)/b.Step)*b.Step
		// float noise from the step multiplication (e.g. 0.1 steps)
		v = math.Round(v*1e9) / 1e9
		if v > b.Max {
			v -= b.Step
		}
	}
	return v
}

// InputLimits describes the ranges an interactive front-end offers for each input.
type InputLimits struct {
	MonthlyContribution Bound `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRate    Bound `yaml:"annual_return_rate" json:"annual_return_rate"`
	InflationRate       Bound `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentPeriod    Bound `yaml:"investment_period" json:"investment_period"`
}

// DefaultLimits returns the slider ranges of the calculator front-end.
func DefaultLimits() InputLimits {
	return InputLimits{
		MonthlyContribution: Bound{Min: 50, Max: 5000, Step: 50},
		AnnualReturnRate:    Bound{Min: 0, Max: 20, Step: 0.1},
		InflationRate:       Bound{Min: 0, Max: 15, Step: 0.1},
		InvestmentPeriod:    Bound{Min: 1, Max: 50, Step: 1},
	}
}

// Clamp returns a copy of in with every field forced into the limits.
// The projection engine never calls this; front-ends opt in.
func (l InputLimits) Clamp(in ProjectionInput) ProjectionInput {
	out := in
	out.MonthlyContribution = l.MonthlyContribution.Clamp(in.MonthlyContribution)
	out.AnnualReturnRate = l.AnnualReturnRate.Clamp(in.AnnualReturnRate)
	out.InflationRate = l.InflationRate.Clamp(in.InflationRate)
	out.InvestmentPeriod = int(l.InvestmentPeriod.Clamp(float64(in.InvestmentPeriod)))
	return out
}
