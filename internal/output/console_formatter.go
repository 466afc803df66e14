package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/investment-projector/internal/domain"
	"golang.org/x/text/language"
)

// ConsoleFormatter renders every scenario with its assumptions, summary and period table.
type ConsoleFormatter struct {
	Locale language.Tag
}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) WithLocale(tag language.Tag) Formatter { return ConsoleFormatter{Locale: tag} }

func (c ConsoleFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	for i, sc := range report.Scenarios {
		if i > 0 {
			fmt.Fprintln(&buf)
		}
		writeScenario(&buf, &sc, c.Locale)
	}
	if len(report.Scenarios) > 1 {
		writeRecommendation(&buf, report, c.Locale)
	}
	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, sc *domain.ProjectionResult, tag language.Tag) {
	title := "INVESTMENT PROJECTION"
	if sc.Name != "" {
		title += ": " + sc.Name
	}
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", 72))
	fmt.Fprintln(buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(sc.Input, tag) {
		fmt.Fprintf(buf, "• %s\n", a)
	}
	fmt.Fprintln(buf)
	writeSummary(buf, sc, tag)
	fmt.Fprintln(buf)

	label := sc.Input.Granularity.PeriodLabel()
	fmt.Fprintf(buf, "%-6s %16s %16s %16s %16s\n", label, "Invested", "Interest", "Total", "Real")
	fmt.Fprintln(buf, strings.Repeat("-", 72))
	for _, s := range sc.Snapshots {
		fmt.Fprintf(buf, "%-6d %16s %16s %16s %16s\n",
			s.Period,
			FormatCurrency(s.InvestedCapital, tag),
			FormatCurrency(s.AccumulatedInterest, tag),
			FormatCurrency(s.TotalValue, tag),
			FormatCurrency(s.RealValue, tag),
		)
	}
	if len(sc.Snapshots) == 0 {
		fmt.Fprintln(buf, "(no periods: the investment horizon is empty)")
	}
}

func writeSummary(buf *bytes.Buffer, sc *domain.ProjectionResult, tag language.Tag) {
	fmt.Fprintf(buf, "Total future value:     %s (%s)\n", FormatCurrency(sc.Summary.Total, tag), FormatCompact(sc.Summary.Total))
	fmt.Fprintf(buf, "Real value (today):     %s\n", FormatCurrency(sc.Summary.Real, tag))
	fmt.Fprintf(buf, "Invested capital:       %s\n", FormatCurrency(sc.Summary.Invested, tag))
	fmt.Fprintf(buf, "Accumulated interest:   %s\n", FormatCurrency(sc.Summary.Interest, tag))
	fmt.Fprintf(buf, "Real rate of return:    %s\n", FormatPercentage(sc.RealRateOfReturn))
}

func writeRecommendation(buf *bytes.Buffer, report *domain.ProjectionReport, tag language.Tag) {
	rec := AnalyzeScenarios(report)
	if rec.ScenarioName == "" {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "Most purchasing power: %s (%s real, %s lost to inflation)\n",
		rec.ScenarioName, FormatCurrency(rec.FinalReal, tag), FormatCurrency(rec.InflationLoss, tag))
}

// ConsoleSummaryFormatter prints one concise block per scenario without the period table.
type ConsoleSummaryFormatter struct {
	Locale language.Tag
}

func (c ConsoleSummaryFormatter) Name() string { return "console-lite" }

func (c ConsoleSummaryFormatter) WithLocale(tag language.Tag) Formatter {
	return ConsoleSummaryFormatter{Locale: tag}
}

func (c ConsoleSummaryFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "INVESTMENT PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range report.Scenarios {
		fmt.Fprintf(&buf, "%s: Total=%s Real=%s Invested=%s Interest=%s RealRate=%s\n",
			sc.Name,
			FormatCurrency(sc.Summary.Total, c.Locale),
			FormatCurrency(sc.Summary.Real, c.Locale),
			FormatCurrency(sc.Summary.Invested, c.Locale),
			FormatCurrency(sc.Summary.Interest, c.Locale),
			FormatPercentage(sc.RealRateOfReturn),
		)
	}
	if len(report.Scenarios) > 1 {
		writeRecommendation(&buf, report, c.Locale)
	}
	return buf.Bytes(), nil
}
