package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evcraddock/client-tracker/internal/client"
)

// clientFlags binds the editable client fields to command flags.
type clientFlags struct {
	name            string
	houseAddress    string
	registerAddress string
	nextFollow      string
	notes           string
}

func (f *clientFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "client name")
	cmd.Flags().StringVar(&f.houseAddress, "house-address", "", "house address")
	cmd.Flags().StringVar(&f.registerAddress, "register-address", "", "registered address")
	cmd.Flags().StringVar(&f.nextFollow, "next-follow", "", "next follow-up date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.notes, "notes", "", "free-form notes")
}

func (f *clientFlags) input() client.Input {
	return client.Input{
		Name:            f.name,
		HouseAddress:    f.houseAddress,
		RegisterAddress: f.registerAddress,
		NextFollow:      f.nextFollow,
		Notes:           f.notes,
	}
}

func newAddCmd() *cobra.Command {
	var f clientFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		Long:  "Add a client. The first-contact date is today; the next follow-up defaults to 14 days from today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, f.input())
		},
	}

	f.register(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runAdd(cmd *cobra.Command, in client.Input) error {
	c, err := newAPIClient().AddClient(cmd.Context(), in)
	if err != nil {
		return fmt.Errorf("adding client: %w", err)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), c)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Client added successfully!")
	printClientSummary(cmd.OutOrStdout(), c)
	return nil
}
