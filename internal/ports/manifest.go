package ports

import "geoio/internal/types"

type ManifestPort interface {
	LoadManifest(path string) (types.Manifest, error)
}
