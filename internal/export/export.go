// Package export writes client records as CSV or XLSX downloads.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/evcraddock/client-tracker/internal/client"
)

// Header is the fixed first row of every export: client name, house
// address, registered address, first contact, next follow-up, notes.
var Header = []string{"客戶姓名", "房屋地址", "戶籍地址", "第一次開發", "下次跟進", "備註"}

// Format identifies an export file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// ParseFormat maps user input ("csv", "xlsx", "excel") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown export format %q (want csv or xlsx)", s)
}

// Filename is the suggested download name.
func (f Format) Filename() string {
	return "clients_export." + string(f)
}

// ContentType is the MIME type served with the download.
func (f Format) ContentType() string {
	if f == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Write serializes clients in this format: one header row, then one row
// per client.
func (f Format) Write(w io.Writer, clients []*client.Client) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, clients)
	case FormatXLSX:
		return WriteXLSX(w, clients)
	}
	return fmt.Errorf("unknown export format %q", string(f))
}

// Row returns the export columns for one client, in Header order.
func Row(c *client.Client) []string {
	return []string{
		c.Name,
		c.HouseAddress,
		c.RegisterAddress,
		c.FirstContact.String(),
		c.NextFollow.String(),
		c.Notes,
	}
}
