package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fecstream/internal/fec"
)

// info <filing>: print the header and cover without decoding the body.
func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <filing>",
		Short: "Print the header and cover of a filing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fec.Open(args[0], fec.Options{
				Strict:       cfg.Parse.Strict,
				MaxLineBytes: cfg.Parse.MaxLineBytes,
			})
			if err != nil {
				return err
			}
			defer f.Close()

			h, err := f.Header()
			if err != nil {
				return err
			}
			c, err := f.Cover()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fec_version:      %s\n", h.FECVersion)
			fmt.Fprintf(out, "software:         %s %s\n", h.SoftwareName, h.SoftwareVersion)
			if h.ReportID != "" {
				fmt.Fprintf(out, "report_id:        %s\n", h.ReportID)
			}
			if h.ReportNumber != "" {
				fmt.Fprintf(out, "report_number:    %s\n", h.ReportNumber)
			}
			fmt.Fprintf(out, "form_type:        %s\n", c.FormType)
			fmt.Fprintf(out, "filer_committee:  %s\n", c.FilerCommitteeID)
			return nil
		},
	}
}
