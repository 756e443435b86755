package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"geoio/internal/app"
)

type verifyOptions struct {
	Report string
}

func newVerifyCommand() *cobra.Command {
	opts := verifyOptions{}
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check that a written report still matches a fresh resolution",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVerify(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Report, "report", "", "Report file written by resolve or scan")
	_ = viper.BindPFlag("report", cmd.Flags().Lookup("report"))
	return cmd
}

func runVerify(ctx context.Context, cmd *cobra.Command, opts verifyOptions) error {
	service := newAppService()
	reportPath := resolveString(cmd, opts.Report, "report", "report")
	result, err := service.Verify(ctx, app.VerifyRequest{ReportPath: reportPath})
	out := cmd.OutOrStdout()
	for _, path := range result.Drifted {
		fmt.Fprintf(out, "drifted: %s\n", path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "verified %d descriptors in %s\n", result.Total, reportPath)
	return nil
}
