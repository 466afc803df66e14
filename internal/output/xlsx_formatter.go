package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet      = "Summary"
	maxSheetNameChars = 31
)

// XLSXFormatter writes a workbook with a summary sheet and one series sheet per scenario.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	header := []any{"Scenario", "Total", "Real", "Invested", "Interest", "Real rate of return (%)"}
	if err := f.SetSheetRow(summarySheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, sc := range report.Scenarios {
		row := []any{sc.Name, sc.Summary.Total, sc.Summary.Real, sc.Summary.Invested, sc.Summary.Interest, sc.RealRateOfReturn}
		if err := setRow(f, summarySheet, i+2, row); err != nil {
			return nil, err
		}

		sheet := SeriesSheetName(i, sc.Name)
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("create sheet %q: %w", sheet, err)
		}
		seriesHeader := []any{sc.Input.Granularity.PeriodLabel(), "Invested capital", "Accumulated interest", "Total value", "Real value"}
		if err := setRow(f, sheet, 1, seriesHeader); err != nil {
			return nil, err
		}
		for r, s := range sc.Snapshots {
			if err := setRow(f, sheet, r+2, []any{s.Period, s.InvestedCapital, s.AccumulatedInterest, s.TotalValue, s.RealValue}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

// SeriesSheetName builds a unique, valid worksheet name for the i-th scenario.
func SeriesSheetName(i int, name string) string {
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(name))
	sheet := fmt.Sprintf("%d %s", i+1, cleaned)
	if runes := []rune(sheet); len(runes) > maxSheetNameChars {
		sheet = string(runes[:maxSheetNameChars])
	}
	return strings.TrimSpace(sheet)
}
