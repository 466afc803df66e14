package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/investment-projector/internal/output"
	"github.com/spf13/cobra"
)

func newFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List the available output formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			fmt.Fprintf(cmd.OutOrStdout(), "aliases: %s\n", strings.Join(output.AvailableFormatAliases(), ", "))
		},
	}
}
