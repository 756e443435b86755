package app

import (
	"context"
	"errors"
	"time"

	"geoio/internal/adapters"
	"geoio/internal/core"
	"geoio/internal/policies"
	"geoio/internal/types"
)

var fixedNow = time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)

// stubReports satisfies ports.ReportPort and keeps the last report written.
type stubReports struct {
	path   string
	report types.Report
	err    error
}

func (s *stubReports) WriteReport(path string, report types.Report) error {
	s.path = path
	s.report = report
	return s.err
}

// stubScanner satisfies ports.TreeScannerPort from a fixed listing.
type stubScanner struct {
	files map[string][]string
}

func (s stubScanner) ListFiles(_ context.Context, root string) ([]string, error) {
	files, ok := s.files[root]
	if !ok {
		return nil, errors.New("unknown root " + root)
	}
	return files, nil
}

func newTestService(reports *stubReports) Service {
	return Service{
		Resolver:    core.NewDescriptorResolver(),
		Codecs:      policies.NewCodecPolicy(policies.DefaultCodecRules()),
		Manifests:   adapters.NewManifestFileAdapter(),
		Reports:     reports,
		Previous:    adapters.NewReportFileAdapter(),
		Scanner:     adapters.NewTreeScannerAdapter(),
		ScanWorkers: 2,
		Clock:       func() time.Time { return fixedNow },
	}
}
