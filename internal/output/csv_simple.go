package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario, in
// configuration order).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "MonthlyContribution", "AnnualReturnRate", "InflationRate", "InvestmentPeriod", "Granularity", "Total", "Real", "Invested", "Interest", "RealRateOfReturn"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		row := []string{
			sc.Name,
			floatToString(sc.Input.MonthlyContribution),
			floatToString(sc.Input.AnnualReturnRate),
			floatToString(sc.Input.InflationRate),
			intToString(sc.Input.InvestmentPeriod),
			string(sc.Input.Granularity),
			int64ToString(sc.Summary.Total),
			int64ToString(sc.Summary.Real),
			int64ToString(sc.Summary.Invested),
			int64ToString(sc.Summary.Interest),
			FormatPercentage(sc.RealRateOfReturn),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
