package types

// Format is the serialization format of a data stream. The zero value is
// FormatUnknown.
type Format string

const (
	FormatUnknown Format = ""
	FormatXML     Format = "xml"
	FormatPBF     Format = "pbf"
	FormatOPL     Format = "opl"
)

func (f Format) String() string {
	if f == FormatUnknown {
		return "unknown"
	}
	return string(f)
}

// Compression is the compression applied to a byte stream. The zero value
// is CompressionNone.
type Compression string

const (
	CompressionNone  Compression = ""
	CompressionGzip  Compression = "gzip"
	CompressionBzip2 Compression = "bzip2"
)

func (c Compression) String() string {
	if c == CompressionNone {
		return "none"
	}
	return string(c)
}
