package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evcraddock/client-tracker/internal/client"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{"short", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"long", "hello world!", 8, "hello..."},
		{"multibyte", "台北市信義區松高路一號", 6, "台北市..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.max))
		})
	}
}

func TestPrintClientTable(t *testing.T) {
	today := client.NewDate(2026, 10, 18)
	result := &client.ListResult{
		Clients: []*client.Client{
			{ID: 1, Name: "Alice", FirstContact: today, NextFollow: today},
			{ID: 2, Name: "Bob", FirstContact: today, NextFollow: today.AddDays(14)},
		},
		Today:      today,
		TodayCount: 1,
	}

	var buf bytes.Buffer
	require.NoError(t, printClientTable(&buf, result))

	out := buf.String()
	assert.Contains(t, out, "NEXT FOLLOW")
	assert.Contains(t, out, "2026-10-18 *")
	assert.Contains(t, out, "2026-11-01")
	assert.Contains(t, out, "Total: 2 clients")
	assert.Contains(t, out, "Due today (2026-10-18): 1")
}

func TestPrintClientTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printClientTable(&buf, &client.ListResult{Today: client.NewDate(2026, 10, 18)}))

	assert.Contains(t, buf.String(), "No clients found.")
	assert.Contains(t, buf.String(), "Due today (2026-10-18): 0")
}

func TestPrintClientSummary(t *testing.T) {
	var buf bytes.Buffer
	printClientSummary(&buf, &client.Client{
		ID:           7,
		Name:         "Alice",
		HouseAddress: "1 Main St",
		FirstContact: client.NewDate(2026, 10, 18),
		NextFollow:   client.NewDate(2026, 11, 1),
	})

	out := buf.String()
	assert.Contains(t, out, "Client #7")
	assert.Contains(t, out, "1 Main St")
	assert.Contains(t, out, "2026-11-01")
	assert.NotContains(t, out, "Notes:")
}
