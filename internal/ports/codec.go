package ports

import (
	"context"

	"geoio/internal/core"
	"geoio/internal/types"
)

// CodecSelectorPort chooses the reader/writer codec for a resolved
// descriptor. Implementations validate the descriptor first and return its
// FormatError unchanged.
type CodecSelectorPort interface {
	Select(ctx context.Context, desc core.FileDescriptor) (types.CodecPlan, error)
}
