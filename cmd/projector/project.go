package main

import (
	"fmt"

	"github.com/rpgo/investment-projector/internal/config"
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/internal/output"
	"github.com/spf13/cobra"
)

func newProjectCmd(a *app) *cobra.Command {
	in := domain.DefaultInput()
	var (
		granularity string
		format      string
		outDir      string
		clamp       bool
		name        string
		saveConfig  string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single input set given on the command line",
		Example: "  projector project --contribution 500 --return 7 --inflation 3 --years 20\n" +
			"  projector project --years 2 --granularity monthly --format detailed-csv",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Granularity = domain.Granularity(granularity)
			if clamp {
				in = domain.DefaultLimits().Clamp(in)
			}
			if err := config.NewInputParser().ValidateInput(&in); err != nil {
				return err
			}
			if saveConfig != "" {
				cfg := &domain.Configuration{Scenarios: []domain.Scenario{{Name: name, ProjectionInput: in}}}
				if err := output.SaveConfiguration(cfg, saveConfig); err != nil {
					return fmt.Errorf("save configuration: %w", err)
				}
			}
			result := a.engine.RunProjection(name, in)
			return a.emit(cmd, &domain.ProjectionReport{Scenarios: []domain.ProjectionResult{*result}}, format, outDir)
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&in.MonthlyContribution, "contribution", "c", in.MonthlyContribution, "amount deposited at the end of every month")
	flags.Float64VarP(&in.AnnualReturnRate, "return", "r", in.AnnualReturnRate, "nominal annual return in percent")
	flags.Float64VarP(&in.InflationRate, "inflation", "i", in.InflationRate, "annual inflation in percent")
	flags.IntVarP(&in.InvestmentPeriod, "years", "y", in.InvestmentPeriod, "investment horizon in years")
	flags.StringVarP(&granularity, "granularity", "g", string(in.Granularity), "reporting granularity (yearly or monthly)")
	flags.StringVarP(&format, "format", "f", "console", "output format (see 'projector formats')")
	flags.StringVar(&outDir, "out-dir", "", "write a timestamped report file into this directory instead of stdout")
	flags.BoolVar(&clamp, "clamp", false, "force inputs into the calculator's slider ranges")
	flags.StringVar(&name, "name", "Projection", "scenario name shown in reports")
	flags.StringVar(&saveConfig, "save-config", "", "also save the inputs as a scenario file usable with 'projector run'")
	return cmd
}
