package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoio/internal/core"
	"geoio/internal/policies"
	"geoio/internal/types"
)

func TestValidateApp(t *testing.T) {
	service := newTestService(&stubReports{})

	result, err := service.Validate(t.Context(), ValidateRequest{
		Path:    "https://example.com/extract",
		Options: []string{"pbf_dense_nodes=false"},
	})
	require.NoError(t, err)
	assert.Equal(t, "xml", result.Summary.Format)
	assert.Equal(t, "xml", result.Plan.Codec)
	assert.True(t, result.Plan.Flags[policies.FlagAddMetadata])
}

func TestValidateReturnsFormatError(t *testing.T) {
	service := newTestService(&stubReports{})

	_, err := service.Validate(t.Context(), ValidateRequest{Path: "test", Format: "bla=foo"})
	require.Error(t, err)
	assert.True(t, core.IsFormatError(err))
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Equal(t,
		"could not detect file format from format string 'bla=foo' for filename 'test'.",
		core.ErrorMessage(err))
}

func TestValidateReturnsCodecError(t *testing.T) {
	service := newTestService(&stubReports{})
	service.Codecs = policies.NewCodecPolicy([]types.CodecRule{
		{Name: "pbf", Format: types.FormatPBF, Compressions: []types.Compression{types.CompressionNone}},
	})

	_, err := service.Validate(t.Context(), ValidateRequest{Path: "a.osm.pbf.bz2"})
	require.Error(t, err)
	assert.False(t, core.IsFormatError(err))
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}
