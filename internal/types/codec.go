package types

// CodecRule describes which descriptors a reader/writer codec accepts.
// An empty Compressions list accepts every compression; a nil History
// accepts both snapshot and history streams.
type CodecRule struct {
	Name         string
	Format       Format
	Compressions []Compression
	History      *bool
	Flags        []string
}

type CodecPlan struct {
	Codec       string
	Format      Format
	Compression Compression
	History     bool
	Flags       map[string]bool
	Options     []OptionEntry
}
