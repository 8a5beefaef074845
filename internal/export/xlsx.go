package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/evcraddock/client-tracker/internal/client"
)

// SheetName is the title of the single worksheet ("client data").
const SheetName = "客戶資料"

// WriteXLSX writes a workbook with one sheet holding the header and rows.
func WriteXLSX(w io.Writer, clients []*client.Client) (err error) {
	f := excelize.NewFile()
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing workbook: %w", closeErr)
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, Header); err != nil {
		return fmt.Errorf("writing xlsx header: %w", err)
	}
	for i, c := range clients {
		if err := setRow(f, i+2, Row(c)); err != nil {
			return fmt.Errorf("writing xlsx row for client %d: %w", c.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// setRow writes values into row n (1-based) starting at column A.
func setRow(f *excelize.File, n int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, n)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(SheetName, cell, &row)
}
