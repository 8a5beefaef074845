package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evcraddock/client-tracker/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		typ    string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all clients to CSV or XLSX",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(typ)
			if err != nil {
				return err
			}
			if output == "" {
				output = format.Filename()
			}

			data, err := newAPIClient().Export(cmd.Context(), format)
			if err != nil {
				return fmt.Errorf("exporting clients: %w", err)
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), map[string]interface{}{
					"format": string(format),
					"path":   output,
					"bytes":  len(data),
				})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s (%d bytes)\n", output, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "csv", "export format (csv|xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: clients_export.<type>)")

	return cmd
}
