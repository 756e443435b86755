package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"geoio/internal/types"
)

// Verify re-resolves every descriptor of a previously written report from
// its path and format string. Entries whose format, compression, history
// or validity changed are returned as a FailedPrecondition error.
func (s Service) Verify(ctx context.Context, req VerifyRequest) (VerifyResult, error) {
	reportPath := strings.TrimSpace(req.ReportPath)
	if reportPath == "" {
		return VerifyResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report path is required")
	}
	report, err := s.Previous.ReadReport(reportPath)
	if err != nil {
		return VerifyResult{}, err
	}

	result := VerifyResult{Total: len(report.Descriptors)}
	for _, stored := range report.Descriptors {
		fresh := summarize(s.Resolver.Resolve(ctx, stored.Path, stored.FormatString), stored.Path)
		if !sameResolution(stored, fresh) {
			result.Drifted = append(result.Drifted, stored.Path)
		}
	}
	log.Ctx(ctx).Debug().
		Str("report", reportPath).
		Int("total", result.Total).
		Int("drifted", len(result.Drifted)).
		Msg("report verified")

	if len(result.Drifted) > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("report out of date: %d of %d descriptors resolve differently",
				len(result.Drifted), result.Total))
	}
	return result, nil
}

func sameResolution(stored types.DescriptorSummary, fresh types.DescriptorSummary) bool {
	return stored.Format == fresh.Format &&
		stored.Compression == fresh.Compression &&
		stored.History == fresh.History &&
		stored.Valid == fresh.Valid
}
