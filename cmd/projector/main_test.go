package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestProjectCommandDefaults(t *testing.T) {
	out, err := execute(t, "project", "--format", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Projection", "500", "7", "3", "20", "yearly"}, rows[1][:6])
	assert.Equal(t, "253768", rows[1][6])
	assert.Equal(t, "120000", rows[1][8])
	assert.Equal(t, "133768", rows[1][9])
}

func TestProjectCommandOneYear(t *testing.T) {
	out, err := execute(t, "project", "--years", "1", "--format", "console", "--name", "One year")
	require.NoError(t, err)
	assert.Contains(t, out, "INVESTMENT PROJECTION: One year")
	assert.Contains(t, out, "$6,190")
	assert.Contains(t, out, "$6,106")
}

func TestProjectCommandMonthlySeries(t *testing.T) {
	out, err := execute(t, "project", "--years", "1", "--granularity", "monthly", "--format", "detailed-csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 13)
}

func TestProjectCommandLocale(t *testing.T) {
	out, err := execute(t, "--locale", "de", "project", "--format", "summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Total=$253.768")
}

func TestProjectCommandClamp(t *testing.T) {
	out, err := execute(t, "project", "--contribution", "10", "--years", "1", "--clamp", "--format", "csv")
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewBufferString(out)).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "50", rows[1][1])
}

func TestProjectCommandRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"granularity", []string{"project", "--granularity", "weekly"}},
		{"negative contribution", []string{"project", "--contribution", "-5"}},
		{"return rate", []string{"project", "--return", "-100"}},
		{"format", []string{"project", "--format", "pdf"}},
		{"locale", []string{"--locale", "not a locale!", "project"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestProjectCommandWritesFile(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "project", "--years", "1", "--format", "json", "--out-dir", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.Equal(t, ".json", filepath.Ext(path))
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestProjectCommandSavesReusableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.yaml")
	_, err := execute(t, "project", "--years", "1", "--name", "Saved", "--save-config", path, "--format", "csv")
	require.NoError(t, err)

	out, err := execute(t, "run", "--config", path, "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved: Total=$6,190 Real=$6,106")
}

func TestRunCommand(t *testing.T) {
	out, err := execute(t, "run", "--config", "../../test/testdata/example_config.yaml", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "Steady saver: Total=$253,768")
	assert.Contains(t, out, "Aggressive saver:")
	assert.Contains(t, out, "Most purchasing power: Aggressive saver")
}

func TestRunCommandRequiresConfig(t *testing.T) {
	_, err := execute(t, "run")
	assert.Error(t, err)

	_, err = execute(t, "run", "--config", "does-not-exist.yaml")
	assert.Error(t, err)
}

func TestFormatsCommand(t *testing.T) {
	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "console-lite")
	assert.Contains(t, out, "xlsx")
	assert.Contains(t, out, "excel")
}
