package app

import (
	"context"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"geoio/internal/types"
)

// Scan resolves every file below the given roots with a shared format
// override. Roots are walked concurrently; the report is sorted by path.
func (s Service) Scan(ctx context.Context, req ScanRequest) (ScanResult, error) {
	if len(req.Roots) == 0 {
		return ScanResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one scan root is required")
	}
	workers := s.ScanWorkers
	if workers <= 0 {
		workers = defaultScanWorkers
	}

	var (
		mu        sync.Mutex
		summaries []types.DescriptorSummary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, root := range req.Roots {
		g.Go(func() error {
			files, err := s.Scanner.ListFiles(gctx, root)
			if err != nil {
				return err
			}
			local := make([]types.DescriptorSummary, 0, len(files))
			for _, file := range files {
				desc := s.Resolver.Resolve(gctx, file, req.Format)
				local = append(local, summarize(desc, file))
			}
			mu.Lock()
			summaries = append(summaries, local...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ScanResult{}, err
	}

	sortSummaries(summaries)
	report := s.newReport(summaries)
	if err := s.Reports.WriteReport(req.Output, report); err != nil {
		return ScanResult{}, err
	}
	log.Ctx(ctx).Debug().
		Int("roots", len(req.Roots)).
		Int("total", report.Total).
		Int("invalid", report.Invalid).
		Msg("scan completed")
	return ScanResult{Total: report.Total, Invalid: report.Invalid, Output: req.Output}, nil
}
