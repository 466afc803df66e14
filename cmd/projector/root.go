package main

import (
	"fmt"

	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/internal/logging"
	"github.com/rpgo/investment-projector/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type app struct {
	logLevel string
	debug    bool
	locale   string

	tag    language.Tag
	logger *zap.Logger
	engine *calculation.CalculationEngine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "projector",
		Short:        "Project the growth of a recurring monthly investment",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "log the derived monthly rates of every projection")
	root.PersistentFlags().StringVar(&a.locale, "locale", "en", "locale used for currency grouping in text reports (e.g. en, es-ES, de)")

	root.AddCommand(
		newProjectCmd(a),
		newRunCmd(a),
		newServeCmd(a),
		newFormatsCmd(),
	)
	return root
}

func (a *app) init() error {
	tag, err := language.Parse(a.locale)
	if err != nil {
		return fmt.Errorf("invalid locale %q: %w", a.locale, err)
	}
	a.tag = tag

	level := a.logLevel
	if a.debug {
		level = "debug"
	}
	logger, err := logging.New(level)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.logger = logger

	a.engine = calculation.NewCalculationEngine()
	a.engine.Debug = a.debug
	a.engine.SetLogger(calculation.ZapLogger(logger))
	return nil
}

// emit prints the report to the command output, or writes it under outDir when set.
func (a *app) emit(cmd *cobra.Command, report *domain.ProjectionReport, format, outDir string) error {
	if outDir != "" {
		files, err := output.GenerateReport(report, format, outDir, a.tag)
		if err != nil {
			return err
		}
		for _, f := range files {
			fmt.Fprintln(cmd.OutOrStdout(), f)
		}
		return nil
	}

	f, err := output.GetLocalizedFormatter(format, a.tag)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("format %s: %w", f.Name(), err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
