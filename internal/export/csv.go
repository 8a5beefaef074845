package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/evcraddock/client-tracker/internal/client"
)

// utf8BOM lets spreadsheet apps detect UTF-8 when opening the CSV.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// WriteCSV writes a UTF-8 CSV with a leading byte-order mark.
func WriteCSV(w io.Writer, clients []*client.Client) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("writing byte-order mark: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, c := range clients {
		if err := cw.Write(Row(c)); err != nil {
			return fmt.Errorf("writing csv row for client %d: %w", c.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
