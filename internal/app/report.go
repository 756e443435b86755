package app

import (
	"sort"
	"time"

	"geoio/internal/core"
	"geoio/internal/types"
)

// summarize reports desc under the path the caller supplied, which differs
// from the descriptor filename for the stdin/stdout sentinel.
func summarize(desc core.FileDescriptor, path string) types.DescriptorSummary {
	summary := desc.Summary()
	summary.Path = path
	return summary
}

func applyOptions(desc core.FileDescriptor, options []string) {
	for _, option := range options {
		desc.Options().SetString(option)
	}
}

func (s Service) newReport(summaries []types.DescriptorSummary) types.Report {
	report := types.Report{
		Generated:   s.now().UTC().Format(time.RFC3339),
		Total:       len(summaries),
		Descriptors: summaries,
	}
	for _, summary := range summaries {
		if !summary.Valid {
			report.Invalid++
		}
	}
	return report
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock()
}

func sortSummaries(summaries []types.DescriptorSummary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Path < summaries[j].Path
	})
}
