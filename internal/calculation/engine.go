package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/rpgo/investment-projector/internal/domain"
)

// ErrRateOutOfDomain is returned for annual rates at or below -100%, where the monthly
// root is undefined.
var ErrRateOutOfDomain = errors.New("annual rate must be greater than -100%")

// Project derives the full result for one input: snapshot series, summary and real rate.
// It is a pure function; call it again whenever any input changes.
func Project(in domain.ProjectionInput) *domain.ProjectionResult {
	if in.Granularity == "" {
		in.Granularity = domain.Yearly
	}
	snapshots := GenerateProjection(in)
	return &domain.ProjectionResult{
		Input:            in,
		Snapshots:        snapshots,
		Summary:          FinalTotals(snapshots),
		RealRateOfReturn: RealRateOfReturn(in.AnnualReturnRate, in.InflationRate),
	}
}

// CalculationEngine runs projections for named scenarios and reports what it does.
type CalculationEngine struct {
	Debug  bool // Log the derived monthly rates and final totals of every run
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// RunProjection projects a single named input.
func (ce *CalculationEngine) RunProjection(name string, in domain.ProjectionInput) *domain.ProjectionResult {
	result := Project(in)
	result.Name = name

	log := ce.logger()
	if ce.Debug {
		rates := ConvertRates(in.AnnualReturnRate, in.InflationRate)
		log.Debugf("PROJECTION %q", name)
		log.Debugf("  Monthly return rate:    %.10f", rates.Return)
		log.Debugf("  Monthly inflation rate: %.10f", rates.Inflation)
		log.Debugf("  Monthly real rate:      %.10f (%.4f%% a year)", rates.RealReturn, AnnualizedRealRate(rates.RealReturn))
		log.Debugf("  Periods reported:       %d (%s)", len(result.Snapshots), result.Input.Granularity)
		log.Debugf("  Final total / real:     %d / %d", result.Summary.Total, result.Summary.Real)
	}
	if len(result.Snapshots) == 0 {
		log.Warnf("projection %q has a horizon of %d years, outside 1..%d; reporting zeros", name, in.InvestmentPeriod, domain.MaxInvestmentPeriod)
	}
	return result
}

// RunScenarios projects every scenario of the configuration, in order.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ProjectionReport, error) {
	if config == nil || len(config.Scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to run")
	}

	report := &domain.ProjectionReport{Scenarios: make([]domain.ProjectionResult, 0, len(config.Scenarios))}
	for _, scenario := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if scenario.AnnualReturnRate <= -100 || scenario.InflationRate <= -100 {
			return nil, fmt.Errorf("scenario %q: %w", scenario.Name, ErrRateOutOfDomain)
		}
		report.Scenarios = append(report.Scenarios, *ce.RunProjection(scenario.Name, scenario.ProjectionInput))
	}
	ce.logger().Infof("projected %d scenarios", len(report.Scenarios))
	return report, nil
}
