package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geoio/internal/app"
)

type resolveOptions struct {
	Manifest string
	Output   string
	Strict   bool
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve every entry of a manifest into a report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Manifest file path")
	cmd.Flags().StringVar(&opts.Output, "output", "-", "Report path, - for stdout")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Fail on the first entry without a usable format")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("strict", cmd.Flags().Lookup("strict"))
	return cmd
}

func runResolve(ctx context.Context, cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	output := resolveString(cmd, opts.Output, "output", "output")
	service.Reports = reportAdapter(cmd)
	result, err := service.Resolve(ctx, app.ResolveRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Output:       output,
		Strict:       resolveBool(cmd, opts.Strict, "strict", "strict"),
	})
	if err != nil {
		return err
	}
	if !writesToStdout(output) {
		fmt.Fprintf(cmd.OutOrStdout(), "resolved %d entries (%d invalid) into %s\n",
			result.Total, result.Invalid, result.Output)
	}
	return nil
}
