package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/client-tracker/internal/apiclient"
	"github.com/evcraddock/client-tracker/internal/client"
)

func newEditCmd() *cobra.Command {
	var f clientFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a client",
		Long:  "Edit a client. Only the flags given are changed; the first-contact date is never changed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, args[0], &f)
		},
	}

	f.register(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, arg string, f *clientFlags) error {
	id, err := parseClientID(arg)
	if err != nil {
		return err
	}

	api := newAPIClient()
	current, err := api.GetClient(cmd.Context(), id)
	if errors.Is(err, apiclient.ErrNotFound) {
		return fmt.Errorf("client #%d not found", id)
	}
	if err != nil {
		return fmt.Errorf("loading client: %w", err)
	}

	in := client.Input{
		Name:            current.Name,
		HouseAddress:    current.HouseAddress,
		RegisterAddress: current.RegisterAddress,
		Notes:           current.Notes,
	}
	flags := cmd.Flags()
	if flags.Changed("name") {
		in.Name = f.name
	}
	if flags.Changed("house-address") {
		in.HouseAddress = f.houseAddress
	}
	if flags.Changed("register-address") {
		in.RegisterAddress = f.registerAddress
	}
	if flags.Changed("next-follow") {
		in.NextFollow = f.nextFollow
	}
	if flags.Changed("notes") {
		in.Notes = f.notes
	}

	updated, err := api.UpdateClient(cmd.Context(), id, in)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), updated)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Client updated.")
	printClientSummary(cmd.OutOrStdout(), updated)
	return nil
}
