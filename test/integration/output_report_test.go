package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rpgo/investment-projector/internal/calculation"
	"github.com/rpgo/investment-projector/internal/config"
	"github.com/rpgo/investment-projector/internal/domain"
	"github.com/rpgo/investment-projector/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
)

func loadReport(t *testing.T) *domain.ProjectionReport {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)
	report, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	require.NoError(t, err)
	return report
}

func TestGenerateAllReports(t *testing.T) {
	report := loadReport(t)
	dir := t.TempDir()

	files, err := output.GenerateReport(report, "all", dir, language.English)
	require.NoError(t, err)
	require.Len(t, files, 3)

	exts := make([]string, 0, len(files))
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Greater(t, info.Size(), int64(0))
		exts = append(exts, filepath.Ext(f))
	}
	assert.Equal(t, []string{".txt", ".csv", ".xlsx"}, exts)
}

func TestWorkbookContents(t *testing.T) {
	report := loadReport(t)

	data, err := output.XLSXFormatter{}.Format(report)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	sheets := wb.GetSheetList()
	require.Len(t, sheets, 3)
	assert.Equal(t, "Summary", sheets[0])

	rows, err := wb.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Steady saver", rows[1][0])

	series, err := wb.GetRows(sheets[2])
	require.NoError(t, err)
	assert.Len(t, series, 241)
}

func TestJSONReportShape(t *testing.T) {
	report := loadReport(t)

	data, err := output.JSONFormatter{}.Format(report)
	require.NoError(t, err)

	var decoded struct {
		Scenarios []struct {
			Name string `json:"name"`
			Data []struct {
				Year        int   `json:"year"`
				TotalValue  int64 `json:"totalValue"`
				RealValue   int64 `json:"realValue"`
				Invested    int64 `json:"investedCapital"`
				Accumulated int64 `json:"accumulatedInterest"`
			} `json:"data"`
			Summary struct {
				Total int64 `json:"total"`
			} `json:"summary"`
		} `json:"scenarios"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Scenarios, 2)

	steady := decoded.Scenarios[0]
	require.Len(t, steady.Data, 20)
	assert.Equal(t, 20, steady.Data[19].Year)
	assert.Equal(t, steady.Summary.Total, steady.Data[19].TotalValue)
	assert.Equal(t, int64(6000), steady.Data[0].Invested)
}
