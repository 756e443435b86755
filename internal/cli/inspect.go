package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geoio/internal/app"
)

type inspectOptions struct {
	Format  string
	Options []string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect [PATH]",
		Short: "Show how a file name and format string resolve",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), cmd, pathArg(args), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "", "Format override, e.g. osh.pbf,history=true")
	cmd.Flags().StringArrayVar(&opts.Options, "option", nil, "Extra option as key=value (repeatable)")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("options", cmd.Flags().Lookup("option"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, path string, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		Path:    path,
		Format:  resolveString(cmd, opts.Format, "format", "format"),
		Options: resolveStrings(cmd, opts.Options, "options", "option"),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, result.Summary)
	switch {
	case result.Plan != nil:
		printPlan(out, *result.Plan)
	case result.CodecError != "":
		fmt.Fprintf(out, "codec: %s\n", result.CodecError)
	}
	return nil
}
