package main

import (
	"fmt"

	"github.com/rpgo/investment-projector/internal/config"
	"github.com/spf13/cobra"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		configPath string
		format     string
		outDir     string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project every scenario of a YAML configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(configPath)
			if err != nil {
				return err
			}
			report, err := a.engine.RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return fmt.Errorf("run scenarios: %w", err)
			}
			return a.emit(cmd, report, format, outDir)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to the scenario configuration (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format, or \"all\" together with --out-dir")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write timestamped report files into this directory instead of stdout")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}
