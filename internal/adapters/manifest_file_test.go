package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"geoio/internal/types"
)

func TestManifestFileAdapterLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "manifest.yaml")
	content := `entries:
  - path: planet.osm.pbf
  - path: "-"
    format: osm.bz2
  - path: changes
    format: osc
    options:
      - add_metadata=false
      - verbose
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	manifest, err := NewManifestFileAdapter().LoadManifest(path)
	require.NoError(t, err)
	want := types.Manifest{Entries: []types.ManifestEntry{
		{Path: "planet.osm.pbf"},
		{Path: "-", Format: "osm.bz2"},
		{Path: "changes", Format: "osc", Options: []string{"add_metadata=false", "verbose"}},
	}}
	if diff := cmp.Diff(want, manifest); diff != "" {
		t.Fatalf("unexpected manifest (-want +got):\n%s", diff)
	}
}

func TestManifestFileAdapterErrors(t *testing.T) {
	dir := t.TempDir()
	adapter := NewManifestFileAdapter()

	_, err := adapter.LoadManifest(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeNotFound, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected code (-want +got):\n%s", diff)
	}

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("entries: [\n"), 0644))
	_, err = adapter.LoadManifest(broken)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected code (-want +got):\n%s", diff)
	}

	empty := filepath.Join(dir, "empty-entry.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("entries:\n  - options: [a]\n"), 0644))
	_, err = adapter.LoadManifest(empty)
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected code (-want +got):\n%s", diff)
	}
}
