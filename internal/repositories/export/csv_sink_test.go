package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVSink_Render(t *testing.T) {
	sink := NewCSVSink()

	headers := []string{"Bar", "Total"}
	rows := [][]string{
		{"The Dart Inn", "100.00"},
		{"O'Malley's, Downtown", "42.50"},
	}

	file, err := sink.Render("collections_2024-01-01_2024-02-01", headers, rows)
	require.NoError(t, err)

	assert.Equal(t, "collections_2024-01-01_2024-02-01.csv", file.FileName)
	assert.Equal(t, "text/csv", file.ContentType)

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Bar","Total"`, lines[0])
	assert.Equal(t, `"The Dart Inn","100.00"`, lines[1])
	// A comma inside a field stays inside its quotes.
	assert.Equal(t, `"O'Malley's, Downtown","42.50"`, lines[2])
}

func TestCSVSink_Render_QuotesAlwaysApplied(t *testing.T) {
	sink := NewCSVSink()

	file, err := sink.Render("report", []string{"Comments"}, [][]string{
		{`left two coins "stuck" in tray`},
		{""},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(file.Content), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"left two coins ""stuck"" in tray"`, lines[1])
	// Empty fields are still quoted.
	assert.Equal(t, `""`, lines[2])
}

func TestCSVSink_Render_NoRows(t *testing.T) {
	sink := NewCSVSink()

	file, err := sink.Render("empty", []string{"Bar", "Total"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "\"Bar\",\"Total\"\n", string(file.Content))
}
