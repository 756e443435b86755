package types

type OptionEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// DescriptorSummary is the serializable view of a resolved file descriptor.
// Format and Compression hold the String() form of their enums.
type DescriptorSummary struct {
	Path         string        `yaml:"path"`
	Filename     string        `yaml:"filename"`
	FormatString string        `yaml:"format_string,omitempty"`
	Format       string        `yaml:"format"`
	Compression  string        `yaml:"compression"`
	History      bool          `yaml:"history"`
	Options      []OptionEntry `yaml:"options,omitempty"`
	Valid        bool          `yaml:"valid"`
	Error        string        `yaml:"error,omitempty"`
}

type Report struct {
	Generated   string              `yaml:"generated"`
	Total       int                 `yaml:"total"`
	Invalid     int                 `yaml:"invalid"`
	Descriptors []DescriptorSummary `yaml:"descriptors"`
}
