package app

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"geoio/internal/policies"
	"geoio/internal/types"
)

func TestInspectApp(t *testing.T) {
	service := newTestService(&stubReports{})

	result, err := service.Inspect(t.Context(), InspectRequest{Path: "planet.osm.pbf"})
	require.NoError(t, err)
	want := types.DescriptorSummary{
		Path:        "planet.osm.pbf",
		Filename:    "planet.osm.pbf",
		Format:      "pbf",
		Compression: "none",
		Valid:       true,
	}
	if diff := cmp.Diff(want, result.Summary); diff != "" {
		t.Fatalf("unexpected summary (-want +got):\n%s", diff)
	}
	require.NotNil(t, result.Plan)
	assert.Equal(t, "pbf", result.Plan.Codec)
	assert.Empty(t, result.CodecError)
}

func TestInspectStdioWithOverrideAndOptions(t *testing.T) {
	service := newTestService(&stubReports{})

	result, err := service.Inspect(t.Context(), InspectRequest{
		Path:    "-",
		Format:  "opl",
		Options: []string{"add_metadata=false", "tag=1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "-", result.Summary.Path)
	assert.Equal(t, "", result.Summary.Filename)
	assert.Equal(t, "opl", result.Summary.Format)
	require.NotNil(t, result.Plan)
	if diff := cmp.Diff(map[string]bool{policies.FlagAddMetadata: false}, result.Plan.Flags); diff != "" {
		t.Fatalf("unexpected flags (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.OptionEntry{
		{Key: "add_metadata", Value: "false"},
		{Key: "tag", Value: "1"},
	}, result.Summary.Options); diff != "" {
		t.Fatalf("unexpected options (-want +got):\n%s", diff)
	}
}

func TestInspectUnknownFormatIsNotAnError(t *testing.T) {
	service := newTestService(&stubReports{})

	result, err := service.Inspect(t.Context(), InspectRequest{Path: "notes.txt"})
	require.NoError(t, err)
	assert.False(t, result.Summary.Valid)
	assert.Equal(t, "could not detect file format for filename 'notes.txt'.", result.Summary.Error)
	assert.Nil(t, result.Plan)
	assert.Empty(t, result.CodecError)
}

func TestInspectReportsMissingCodec(t *testing.T) {
	service := newTestService(&stubReports{})
	service.Codecs = policies.NewCodecPolicy([]types.CodecRule{{Name: "pbf", Format: types.FormatPBF}})

	result, err := service.Inspect(t.Context(), InspectRequest{Path: "a.osm"})
	require.NoError(t, err)
	assert.True(t, result.Summary.Valid)
	assert.Nil(t, result.Plan)
	assert.Equal(t, "no codec registered for xml/none", result.CodecError)
}

func TestInspectRequiresPathOrFormat(t *testing.T) {
	service := newTestService(&stubReports{})

	_, err := service.Inspect(t.Context(), InspectRequest{Path: "  "})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
