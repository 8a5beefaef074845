package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evcraddock/client-tracker/internal/apiclient"
)

func newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a client",
		Args:  cobra.ExactArgs(1),
		RunE:  runRemove,
	}
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseClientID(args[0])
	if err != nil {
		return err
	}

	// A client that is already gone is a warning, not a failure.
	removed := true
	err = newAPIClient().DeleteClient(cmd.Context(), id)
	if errors.Is(err, apiclient.ErrNotFound) {
		removed = false
	} else if err != nil {
		return fmt.Errorf("removing client: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), map[string]interface{}{
			"id":      id,
			"removed": removed,
		})
	}

	if !removed {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: client #%d not found, nothing removed.\n", id)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Client #%d removed.\n", id)
	return nil
}

func parseClientID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid client ID: %s", s)
	}
	return id, nil
}
