package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"geoio/internal/types"
)

// Resolve resolves every manifest entry and writes the report. In strict
// mode the first entry's FormatError is returned once the report is out.
func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ResolveResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, err := s.Manifests.LoadManifest(manifestPath)
	if err != nil {
		return ResolveResult{}, err
	}

	var firstErr error
	summaries := make([]types.DescriptorSummary, 0, len(manifest.Entries))
	for _, entry := range manifest.Entries {
		desc := s.Resolver.Resolve(ctx, entry.Path, entry.Format)
		applyOptions(desc, entry.Options)
		if err := desc.Validate(); err != nil && firstErr == nil {
			firstErr = err
		}
		summaries = append(summaries, summarize(desc, entry.Path))
	}

	report := s.newReport(summaries)
	if err := s.Reports.WriteReport(req.Output, report); err != nil {
		return ResolveResult{}, err
	}
	log.Ctx(ctx).Debug().
		Str("manifest", manifestPath).
		Int("total", report.Total).
		Int("invalid", report.Invalid).
		Msg("manifest resolved")

	result := ResolveResult{Total: report.Total, Invalid: report.Invalid, Output: req.Output}
	if req.Strict && firstErr != nil {
		return result, firstErr
	}
	return result, nil
}
