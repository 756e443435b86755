package adapters

import (
	"io"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"geoio/internal/ports"
	"geoio/internal/types"
)

// ReportFileAdapter reads and writes YAML descriptor reports. The path "-"
// writes to Stdout.
type ReportFileAdapter struct {
	Stdout io.Writer
}

func NewReportFileAdapter() ReportFileAdapter {
	return ReportFileAdapter{Stdout: os.Stdout}
}

func (a ReportFileAdapter) WriteReport(path string, report types.Report) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to encode report").
			WithCause(err)
	}
	if path == "" || path == "-" {
		if _, err := a.Stdout.Write(data); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write report").
				WithCause(err)
		}
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

func (a ReportFileAdapter) ReadReport(path string) (types.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Report{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("report file not found").
			WithCause(err)
	}
	var report types.Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return types.Report{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid report format").
			WithCause(err)
	}
	return report, nil
}

var (
	_ ports.ReportPort       = ReportFileAdapter{}
	_ ports.ReportReaderPort = ReportFileAdapter{}
)
