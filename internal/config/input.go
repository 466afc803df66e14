package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// ErrInvalidInput marks inputs outside the domain the projection supports.
var ErrInvalidInput = errors.New("invalid projection input")

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes, normalizes and validates a configuration document.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration. Granularities are
// normalized in place ("months" becomes "monthly", empty becomes "yearly").
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if strings.TrimSpace(scenario.Name) == "" {
			return fmt.Errorf("scenario %d: scenario name is required", i)
		}
		if err := ip.ValidateInput(&scenario.ProjectionInput); err != nil {
			return fmt.Errorf("scenario %q validation failed: %w", scenario.Name, err)
		}
	}

	dupes := lo.FindDuplicatesBy(config.Scenarios, func(s domain.Scenario) string { return s.Name })
	if len(dupes) > 0 {
		return fmt.Errorf("duplicate scenario name %q", dupes[0].Name)
	}

	return nil
}

// ValidateInput checks a single input against the preconditions of the engine. It does
// not clamp: values outside the front-end limits are accepted, up to a horizon of
// domain.MaxInvestmentPeriod years.
func (ip *InputParser) ValidateInput(in *domain.ProjectionInput) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"monthly contribution", in.MonthlyContribution},
		{"annual return rate", in.AnnualReturnRate},
		{"inflation rate", in.InflationRate},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", ErrInvalidInput, f.name)
		}
	}
	if in.MonthlyContribution < 0 {
		return fmt.Errorf("%w: monthly contribution cannot be negative", ErrInvalidInput)
	}
	if in.AnnualReturnRate <= -100 {
		return fmt.Errorf("%w: annual return rate must be greater than -100%%", ErrInvalidInput)
	}
	if in.InflationRate <= -100 {
		return fmt.Errorf("%w: inflation rate must be greater than -100%%", ErrInvalidInput)
	}
	if in.InvestmentPeriod < 0 {
		return fmt.Errorf("%w: investment period cannot be negative", ErrInvalidInput)
	}
	if in.InvestmentPeriod > domain.MaxInvestmentPeriod {
		return fmt.Errorf("%w: investment period cannot exceed %d years", ErrInvalidInput, domain.MaxInvestmentPeriod)
	}

	g, err := domain.ParseGranularity(string(in.Granularity))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	in.Granularity = g

	return nil
}
