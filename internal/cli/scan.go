package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geoio/internal/app"
)

type scanOptions struct {
	Roots   []string
	Format  string
	Output  string
	Workers int
}

func newScanCommand() *cobra.Command {
	opts := scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Resolve every file below one or more directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.Roots, "root", nil, "Directories to scan")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Format override applied to every file")
	cmd.Flags().StringVar(&opts.Output, "output", "-", "Report path, - for stdout")
	cmd.Flags().IntVar(&opts.Workers, "workers", 4, "Roots scanned concurrently")
	_ = viper.BindPFlag("roots", cmd.Flags().Lookup("root"))
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("scan_workers", cmd.Flags().Lookup("workers"))
	return cmd
}

func runScan(ctx context.Context, cmd *cobra.Command, opts scanOptions) error {
	service := newAppService()
	service.ScanWorkers = resolveInt(cmd, opts.Workers, "scan_workers", "workers")
	service.Reports = reportAdapter(cmd)
	output := resolveString(cmd, opts.Output, "output", "output")
	result, err := service.Scan(ctx, app.ScanRequest{
		Roots:  resolveStrings(cmd, opts.Roots, "roots", "root"),
		Format: resolveString(cmd, opts.Format, "format", "format"),
		Output: output,
	})
	if err != nil {
		return err
	}
	if !writesToStdout(output) {
		fmt.Fprintf(cmd.OutOrStdout(), "scanned %d files (%d invalid) into %s\n",
			result.Total, result.Invalid, result.Output)
	}
	return nil
}
