package output

import (
	"fmt"
	"os"

	"github.com/rpgo/investment-projector/internal/domain"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders the report in the named format and writes it to a timestamped
// file in dir. "all" writes the console, detailed CSV and workbook outputs.
func GenerateReport(report *domain.ProjectionReport, format, dir string, tag language.Tag) ([]string, error) {
	names := []string{format}
	if NormalizeFormatName(format) == "all" {
		names = []string{"console", "detailed-csv", "xlsx"}
	}

	written := make([]string, 0, len(names))
	for _, name := range names {
		f, err := GetLocalizedFormatter(name, tag)
		if err != nil {
			return written, err
		}
		path, err := WriteFormatted(f, report, dir, Extension(name))
		if err != nil {
			return written, fmt.Errorf("write %s report: %w", f.Name(), err)
		}
		written = append(written, path)
	}
	return written, nil
}

// SaveConfiguration writes a scenario configuration as YAML.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
