package ports

import "geoio/internal/types"

type ReportPort interface {
	WriteReport(path string, report types.Report) error
}

type ReportReaderPort interface {
	ReadReport(path string) (types.Report, error)
}
