package core

import (
	"path/filepath"
	"strings"

	"geoio/internal/types"
)

// suffixEffect is what a single suffix token contributes to a descriptor.
// weak marks tokens that only assign XML when no base format token is seen.
type suffixEffect struct {
	format      types.Format
	weak        bool
	compression types.Compression
	history     bool
}

var suffixTable = map[string]suffixEffect{
	"osm": {format: types.FormatXML, weak: true},
	"osc": {format: types.FormatXML, weak: true, history: true},
	"osh": {history: true},
	"xml": {format: types.FormatXML},
	"opl": {format: types.FormatOPL},
	"pbf": {format: types.FormatPBF},
	"gz":  {compression: types.CompressionGzip},
	"bz2": {compression: types.CompressionBzip2},
}

func isReservedSuffix(token string) bool {
	_, ok := suffixTable[token]
	return ok
}

type suffixResult struct {
	format      types.Format
	weakXML     bool
	compression types.Compression
	history     bool
	unknown     []string
}

// classifySuffixes walks tokens from right to left, so the rightmost base
// format and the rightmost compression win. With strict set every token is
// visited and unrecognized ones are collected; otherwise the walk stops at
// the first unrecognized token, which is taken to be part of the base name.
func classifySuffixes(tokens []string, strict bool) suffixResult {
	var result suffixResult
	for i := len(tokens) - 1; i >= 0; i-- {
		effect, ok := suffixTable[tokens[i]]
		if !ok {
			result.unknown = append(result.unknown, tokens[i])
			if !strict {
				break
			}
			continue
		}
		switch {
		case effect.weak:
			result.weakXML = true
		case effect.format != types.FormatUnknown && result.format == types.FormatUnknown:
			result.format = effect.format
		}
		if effect.compression != types.CompressionNone && result.compression == types.CompressionNone {
			result.compression = effect.compression
		}
		if effect.history {
			result.history = true
		}
	}
	return result
}

func (r suffixResult) resolvedFormat() types.Format {
	if r.format == types.FormatUnknown && r.weakXML {
		return types.FormatXML
	}
	return r.format
}

// filenameSuffixes returns the suffix chain of a path or URL: the
// dot-separated tokens after the first "." of the final path segment.
func filenameSuffixes(filename string) []string {
	name := filename
	if isURL(name) {
		name = name[strings.Index(name, urlSeparator)+len(urlSeparator):]
		if idx := strings.IndexAny(name, "?#"); idx >= 0 {
			name = name[:idx]
		}
		slash := strings.Index(name, "/")
		if slash < 0 {
			return nil
		}
		name = name[slash+1:]
	}
	base := name[strings.LastIndexAny(name, "/"+string(filepath.Separator))+1:]
	_, chain, found := strings.Cut(base, ".")
	if !found {
		return nil
	}
	return splitCompact(chain, ".")
}

const urlSeparator = "://"

func isURL(path string) bool {
	return strings.Contains(path, urlSeparator)
}

// splitCompact splits value on sep and drops empty pieces.
func splitCompact(value string, sep string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, sep)
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
