package app

import (
	"time"

	"geoio/internal/adapters"
	"geoio/internal/core"
	"geoio/internal/policies"
	"geoio/internal/ports"
)

const defaultScanWorkers = 4

type Service struct {
	Resolver    core.DescriptorResolver
	Codecs      ports.CodecSelectorPort
	Manifests   ports.ManifestPort
	Reports     ports.ReportPort
	Previous    ports.ReportReaderPort
	Scanner     ports.TreeScannerPort
	ScanWorkers int
	Clock       func() time.Time
}

func NewService() Service {
	reports := adapters.NewReportFileAdapter()
	return Service{
		Resolver:    core.NewDescriptorResolver(),
		Codecs:      policies.NewCodecPolicy(policies.DefaultCodecRules()),
		Manifests:   adapters.NewManifestFileAdapter(),
		Reports:     reports,
		Previous:    reports,
		Scanner:     adapters.NewTreeScannerAdapter(),
		ScanWorkers: defaultScanWorkers,
		Clock:       time.Now,
	}
}
