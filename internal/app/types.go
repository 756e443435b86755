package app

import "geoio/internal/types"

type InspectRequest struct {
	Path    string
	Format  string
	Options []string
}

// InspectResult always carries the summary, valid or not. Plan is set only
// when a codec could be selected; CodecError explains why it could not.
type InspectResult struct {
	Summary    types.DescriptorSummary
	Plan       *types.CodecPlan
	CodecError string
}

type ValidateRequest struct {
	Path    string
	Format  string
	Options []string
}

type ValidateResult struct {
	Summary types.DescriptorSummary
	Plan    types.CodecPlan
}

type ResolveRequest struct {
	ManifestPath string
	Output       string
	Strict       bool
}

type ResolveResult struct {
	Total   int
	Invalid int
	Output  string
}

type ScanRequest struct {
	Roots  []string
	Format string
	Output string
}

type ScanResult struct {
	Total   int
	Invalid int
	Output  string
}

type VerifyRequest struct {
	ReportPath string
}

// VerifyResult lists the report paths whose stored resolution no longer
// matches a fresh one.
type VerifyResult struct {
	Total   int
	Drifted []string
}
