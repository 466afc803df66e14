package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Granularity selects which months of the monthly recurrence are reported.
type Granularity string

const (
	Yearly  Granularity = "yearly"
	Monthly Granularity = "monthly"
)

// ErrUnknownGranularity is returned when a granularity string cannot be parsed.
var ErrUnknownGranularity = errors.New("unknown granularity")

// ParseGranularity resolves a user supplied granularity. The toggle values of the
// web front-end ("years", "months") are accepted as synonyms.
func ParseGranularity(s string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "yearly", "years", "year", "annual":
		return Yearly, nil
	case "monthly", "months", "month":
		return Monthly, nil
	default:
		return "", fmt.Errorf("%w: %q (want yearly or monthly)", ErrUnknownGranularity, s)
	}
}

// PeriodLabel returns the axis label for a single period.
func (g Granularity) PeriodLabel() string {
	if g == Monthly {
		return "Month"
	}
	return "Year"
}

// ProjectionInput holds the scalar inputs of one projection run. Rates are percentages
// (7 means 7% per year). Values are taken as given; the engine neither clamps nor rejects.
// A horizon outside 1..MaxInvestmentPeriod yields an empty series.
type ProjectionInput struct {
	MonthlyContribution float64     `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRate    float64     `yaml:"annual_return_rate" json:"annual_return_rate"`
	InflationRate       float64     `yaml:"inflation_rate" json:"inflation_rate"`
	InvestmentPeriod    int         `yaml:"investment_period" json:"investment_period"`
	Granularity         Granularity `yaml:"granularity,omitempty" json:"granularity,omitempty"`
}

// MaxInvestmentPeriod is the longest horizon, in years, the engine will run.
const MaxInvestmentPeriod = 1000

// TotalMonths is the number of monthly steps the recurrence runs for. Horizons that are
// not positive or exceed MaxInvestmentPeriod run for zero months.
func (in ProjectionInput) TotalMonths() int {
	if in.InvestmentPeriod <= 0 || in.InvestmentPeriod > MaxInvestmentPeriod {
		return 0
	}
	return in.InvestmentPeriod * 12
}

// DefaultInput mirrors the initial state of the calculator front-end.
func DefaultInput() ProjectionInput {
	return ProjectionInput{
		MonthlyContribution: 500,
		AnnualReturnRate:    7,
		InflationRate:       3,
		InvestmentPeriod:    20,
		Granularity:         Yearly,
	}
}

// Scenario is a named projection input as it appears in a configuration file.
type Scenario struct {
	Name            string `yaml:"name" json:"name"`
	ProjectionInput `yaml:",inline"`
}

// Configuration is the root of a scenario file.
type Configuration struct {
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}
