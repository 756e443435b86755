package types

type Manifest struct {
	Entries []ManifestEntry `yaml:"entries"`
}

// ManifestEntry names one file to resolve. Options are applied to the
// descriptor after construction, in "key=value" or bare "key" form.
type ManifestEntry struct {
	Path    string   `yaml:"path"`
	Format  string   `yaml:"format,omitempty"`
	Options []string `yaml:"options,omitempty"`
}
