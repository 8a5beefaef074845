package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var (
		search string
		today  bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Long:  "List clients, optionally filtered by a case-sensitive search over name, addresses and notes, or by follow-ups due today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := newAPIClient().ListClients(cmd.Context(), search, today)
			if err != nil {
				return fmt.Errorf("listing clients: %w", err)
			}

			if isJSON() {
				return printJSON(cmd.OutOrStdout(), result)
			}
			return printClientTable(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "substring to search for")
	cmd.Flags().BoolVar(&today, "today", false, "only clients due for follow-up today")

	return cmd
}
