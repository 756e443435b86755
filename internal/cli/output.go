package cli

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"geoio/internal/adapters"
	"geoio/internal/types"
)

func printSummary(w io.Writer, summary types.DescriptorSummary) {
	fmt.Fprintf(w, "path: %s\n", summary.Path)
	if summary.FormatString != "" {
		fmt.Fprintf(w, "format string: %s\n", summary.FormatString)
	}
	fmt.Fprintf(w, "format: %s\n", summary.Format)
	fmt.Fprintf(w, "compression: %s\n", summary.Compression)
	fmt.Fprintf(w, "history: %t\n", summary.History)
	if len(summary.Options) > 0 {
		fmt.Fprintf(w, "options: %s\n", joinOptions(summary.Options))
	}
	if !summary.Valid {
		fmt.Fprintf(w, "error: %s\n", summary.Error)
	}
}

func printPlan(w io.Writer, plan types.CodecPlan) {
	fmt.Fprintf(w, "codec: %s\n", plan.Codec)
	flags := make([]string, 0, len(plan.Flags))
	for name, enabled := range plan.Flags {
		flags = append(flags, fmt.Sprintf("%s=%t", name, enabled))
	}
	slices.Sort(flags)
	if len(flags) > 0 {
		fmt.Fprintf(w, "flags: %s\n", strings.Join(flags, ", "))
	}
}

func joinOptions(entries []types.OptionEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, entry.Key+"="+entry.Value)
	}
	return strings.Join(parts, ", ")
}

func writesToStdout(path string) bool {
	return path == "" || path == "-"
}

// reportAdapter writes stdout reports to the command's output stream.
func reportAdapter(cmd *cobra.Command) adapters.ReportFileAdapter {
	return adapters.ReportFileAdapter{Stdout: cmd.OutOrStdout()}
}
