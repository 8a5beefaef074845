package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/evcraddock/client-tracker/internal/client"
)

// printJSON marshals v as indented JSON and writes it to w.
func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printClientSummary prints a single client in text format.
func printClientSummary(w io.Writer, c *client.Client) {
	fmt.Fprintf(w, "Client #%d\n", c.ID)
	fmt.Fprintf(w, "  Name:          %s\n", c.Name)
	if c.HouseAddress != "" {
		fmt.Fprintf(w, "  House:         %s\n", c.HouseAddress)
	}
	if c.RegisterAddress != "" {
		fmt.Fprintf(w, "  Registered:    %s\n", c.RegisterAddress)
	}
	fmt.Fprintf(w, "  First contact: %s\n", c.FirstContact)
	fmt.Fprintf(w, "  Next follow:   %s\n", c.NextFollow)
	if c.Notes != "" {
		fmt.Fprintf(w, "  Notes:         %s\n", c.Notes)
	}
}

// printClientTable prints a list result as a formatted table.
func printClientTable(out io.Writer, result *client.ListResult) error {
	if len(result.Clients) == 0 {
		fmt.Fprintln(out, "No clients found.")
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		if _, err := fmt.Fprintln(w, "ID\tNAME\tHOUSE ADDRESS\tFIRST CONTACT\tNEXT FOLLOW\tNOTES"); err != nil {
			return fmt.Errorf("writing table header: %w", err)
		}
		if _, err := fmt.Fprintln(w, "--\t----\t-------------\t-------------\t-----------\t-----"); err != nil {
			return fmt.Errorf("writing table separator: %w", err)
		}

		for _, c := range result.Clients {
			next := c.NextFollow.String()
			if c.NextFollow.Equal(result.Today) {
				next += " *"
			}
			if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, truncate(c.Name, 20), truncate(c.HouseAddress, 30),
				c.FirstContact, next, truncate(c.Notes, 30)); err != nil {
				return fmt.Errorf("writing table row: %w", err)
			}
		}

		if err := w.Flush(); err != nil {
			return fmt.Errorf("flushing table: %w", err)
		}
		fmt.Fprintf(out, "\nTotal: %d clients\n", len(result.Clients))
	}

	fmt.Fprintf(out, "Due today (%s): %d\n", result.Today, result.TodayCount)
	return nil
}

// truncate shortens s to maxLen runes, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
