package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/samber/lo"
)

// CSVDetailedExporter provides the raw snapshot series, one row per scenario and period.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Granularity", "Period", "InvestedCapital", "AccumulatedInterest", "TotalValue", "RealValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range report.Scenarios {
		rows := lo.Map(sc.Snapshots, func(s domain.Snapshot, _ int) []string {
			return []string{
				sc.Name,
				string(sc.Input.Granularity),
				intToString(s.Period),
				int64ToString(s.InvestedCapital),
				int64ToString(s.AccumulatedInterest),
				int64ToString(s.TotalValue),
				int64ToString(s.RealValue),
			}
		})
		if err := w.WriteAll(rows); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
