// Package cli defines the cobra command tree for client-tracker.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/evcraddock/client-tracker/internal/apiclient"
)

var (
	flagFormat string
	flagServer string
)

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "ct",
		Short:         "Track clients and follow-up dates",
		Long:          "A tool to track clients, their addresses and follow-up dates. Run the web UI with `ct serve` or manage clients from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "API base URL (default: $CT_SERVER_URL, config file, or http://localhost:8080)")

	root.AddCommand(
		newAddCmd(),
		newEditCmd(),
		newListCmd(),
		newRemoveCmd(),
		newExportCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return root
}

// newAPIClient creates an HTTP client for the client-tracker API.
func newAPIClient() *apiclient.Client {
	url := flagServer
	if url == "" {
		url = getServerURL()
	}
	return apiclient.New(url, 0)
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
