package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"geoio/internal/core"
)

// Inspect resolves a descriptor and reports it without failing on an
// unusable format.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	if strings.TrimSpace(req.Path) == "" && strings.TrimSpace(req.Format) == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("path or format is required")
	}
	desc := s.Resolver.Resolve(ctx, req.Path, req.Format)
	applyOptions(desc, req.Options)

	result := InspectResult{Summary: summarize(desc, req.Path)}
	if !result.Summary.Valid {
		return result, nil
	}
	plan, err := s.Codecs.Select(ctx, desc)
	if err != nil {
		result.CodecError = core.ErrorMessage(err)
		return result, nil
	}
	result.Plan = &plan
	return result, nil
}
