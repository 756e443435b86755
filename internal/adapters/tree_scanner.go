package adapters

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/karrick/godirwalk"
	"github.com/rs/zerolog/log"

	"geoio/internal/ports"
)

// errSkipNode makes the walker skip a directory without halting.
var errSkipNode = errors.New("node is skipped")

type TreeScannerAdapter struct {
	IncludeHidden bool
}

func NewTreeScannerAdapter() TreeScannerAdapter {
	return TreeScannerAdapter{}
}

// ListFiles returns every non-directory entry below root in lexical order.
// Hidden entries are skipped unless IncludeHidden is set.
func (a TreeScannerAdapter) ListFiles(ctx context.Context, root string) ([]string, error) {
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("scan root is empty")
	}
	if _, err := os.Stat(root); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("scan root not found: " + root).
			WithCause(err)
	}

	var files []string
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, dirent *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if osPathname != root && !a.IncludeHidden && strings.HasPrefix(dirent.Name(), ".") {
				if dirent.IsDir() {
					return errSkipNode
				}
				return nil
			}
			if dirent.IsDir() {
				return nil
			}
			files = append(files, osPathname)
			return nil
		},
		ErrorCallback: func(_ string, err error) godirwalk.ErrorAction {
			if errors.Is(err, errSkipNode) {
				return godirwalk.SkipNode
			}
			return godirwalk.Halt
		},
		FollowSymbolicLinks: true,
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan tree: " + root).
			WithCause(err)
	}
	log.Debug().
		Str("root", root).
		Int("files", len(files)).
		Msg("tree scanned")
	return files, nil
}

var _ ports.TreeScannerPort = TreeScannerAdapter{}
