package ports

import "context"

// TreeScannerPort lists the regular files below a directory root.
type TreeScannerPort interface {
	ListFiles(ctx context.Context, root string) ([]string, error)
}
