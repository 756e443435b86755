package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geoio/internal/app"
)

type validateOptions struct {
	Format  string
	Options []string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate [PATH]",
		Short: "Fail unless the file resolves to a readable format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), cmd, pathArg(args), opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", "", "Format override, e.g. osh.pbf,history=true")
	cmd.Flags().StringArrayVar(&opts.Options, "option", nil, "Extra option as key=value (repeatable)")
	_ = viper.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("options", cmd.Flags().Lookup("option"))
	return cmd
}

func runValidate(ctx context.Context, cmd *cobra.Command, path string, opts validateOptions) error {
	service := newAppService()
	result, err := service.Validate(ctx, app.ValidateRequest{
		Path:    path,
		Format:  resolveString(cmd, opts.Format, "format", "format"),
		Options: resolveStrings(cmd, opts.Options, "options", "option"),
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid: %s (%s/%s, codec %s)\n",
		result.Summary.Path, result.Summary.Format, result.Summary.Compression, result.Plan.Codec)
	return nil
}
