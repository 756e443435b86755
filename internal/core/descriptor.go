package core

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"geoio/internal/types"
)

// stdioSentinel names standard input/output on the command line.
const stdioSentinel = "-"

const historyOption = "history"

// FileDescriptor holds what readers and writers need to know about a file
// before any I/O begins. Resolution happens once, in NewFileDescriptor;
// afterwards only the options may change.
//
// Copies share the options store. Use Clone when another component needs
// to extend options on its own.
type FileDescriptor struct {
	filename     string
	formatString string
	format       types.Format
	compression  types.Compression
	history      bool
	url          bool
	options      *Options
}

// NewFileDescriptor resolves a descriptor from a filename (or URL) and an
// optional format override such as "osh.pbf,history=true". A non-empty
// override wholly replaces suffix detection on the filename. It never
// fails: an unusable result has FormatUnknown and is rejected by Validate.
func NewFileDescriptor(path string, format string) FileDescriptor {
	desc := FileDescriptor{
		filename:     path,
		formatString: format,
		options:      NewOptions(),
	}
	if desc.filename == stdioSentinel {
		desc.filename = ""
	}
	desc.url = isURL(desc.filename)

	if format == "" {
		desc.apply(classifySuffixes(filenameSuffixes(desc.filename), false))
		desc.applyURLDefault()
		return desc
	}
	desc.parseFormatString(format)
	return desc
}

func (d *FileDescriptor) parseFormatString(format string) {
	segments := splitCompact(format, ",")
	var tokens []string
	if len(segments) > 0 && !strings.Contains(segments[0], "=") {
		tokens = splitCompact(segments[0], ".")
		segments = segments[1:]
	}
	for _, segment := range segments {
		key, _, hasValue := strings.Cut(segment, "=")
		if isReservedSuffix(key) {
			if !hasValue {
				tokens = append(tokens, key)
			}
			continue
		}
		d.options.SetString(segment)
	}

	result := classifySuffixes(tokens, true)
	usable := len(result.unknown) == 0
	if usable {
		d.apply(result)
	}
	switch value, _ := d.options.Get(historyOption); value {
	case "true":
		d.history = true
	case "false":
		d.history = false
	}
	if usable {
		d.applyURLDefault()
	}
}

func (d *FileDescriptor) apply(result suffixResult) {
	d.format = result.resolvedFormat()
	d.compression = result.compression
	d.history = result.history
}

func (d *FileDescriptor) applyURLDefault() {
	if d.format == types.FormatUnknown && d.url {
		d.format = types.FormatXML
	}
}

// Filename returns the path as given, or "" for standard input/output.
func (d FileDescriptor) Filename() string {
	return d.filename
}

func (d FileDescriptor) FormatString() string {
	return d.formatString
}

func (d FileDescriptor) Format() types.Format {
	return d.format
}

func (d FileDescriptor) Compression() types.Compression {
	return d.compression
}

// HasHistory reports whether the stream may carry several versions of the
// same object.
func (d FileDescriptor) HasHistory() bool {
	return d.history
}

func (d FileDescriptor) IsURL() bool {
	return d.url
}

func (d FileDescriptor) IsStdio() bool {
	return d.filename == ""
}

func (d FileDescriptor) Options() *Options {
	return d.options
}

func (d FileDescriptor) Get(key string) (string, bool) {
	return d.options.Get(key)
}

// Set adds or replaces an option after construction. It does not re-run
// resolution. A zero FileDescriptor gets its options store on first Set.
func (d *FileDescriptor) Set(key string, value string) {
	if d.options == nil {
		d.options = NewOptions()
	}
	d.options.Set(key, value)
}

func (d FileDescriptor) Clone() FileDescriptor {
	clone := d
	clone.options = d.options.Clone()
	return clone
}

// Validate returns a FormatError when no format could be determined.
func (d FileDescriptor) Validate() error {
	if d.format == types.FormatUnknown {
		return newFormatError(d.filename, d.formatString)
	}
	return nil
}

func (d FileDescriptor) Summary() types.DescriptorSummary {
	summary := types.DescriptorSummary{
		Path:         d.filename,
		Filename:     d.filename,
		FormatString: d.formatString,
		Format:       d.format.String(),
		Compression:  d.compression.String(),
		History:      d.history,
		Options:      d.options.Entries(),
		Valid:        true,
	}
	if err := d.Validate(); err != nil {
		summary.Valid = false
		summary.Error = ErrorMessage(err)
	}
	return summary
}

type DescriptorResolver struct{}

func NewDescriptorResolver() DescriptorResolver {
	return DescriptorResolver{}
}

func (r DescriptorResolver) Resolve(ctx context.Context, path string, format string) FileDescriptor {
	desc := NewFileDescriptor(path, format)
	log.Ctx(ctx).Debug().
		Str("path", path).
		Str("format_string", format).
		Stringer("format", desc.Format()).
		Stringer("compression", desc.Compression()).
		Bool("history", desc.HasHistory()).
		Int("options", desc.Options().Len()).
		Msg("file descriptor resolved")
	return desc
}
