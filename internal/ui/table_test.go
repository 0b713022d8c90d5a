package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lasif-tools/cli/internal/ui/style"
)

func TestTableAlignsColumns(t *testing.T) {
	style.Init(false)

	out := Table(
		[]string{"id", "latitude", "longitude"},
		[][]string{
			{"GR.FUR", "48.163", "11.275"},
			{"IU.ANTO", "39.868", "32.794"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "id")
	require.Contains(t, lines[1], "--")

	// All rows padded to the same width.
	require.Equal(t, len(lines[2]), len(lines[3]))
	require.Contains(t, lines[3], "IU.ANTO")
}

func TestTablePadsShortRows(t *testing.T) {
	style.Init(false)

	out := Table([]string{"a", "b"}, [][]string{{"only"}})
	require.Contains(t, out, "only")
}

func TestKeyValueTable(t *testing.T) {
	style.Init(false)

	out := KeyValueTable([][2]string{
		{"Name", "anatolia"},
		{"Events", "12"},
	})

	require.Contains(t, out, "Name")
	require.Contains(t, out, "anatolia")

	// Keys padded to equal width: values start at the same column.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, strings.Index(lines[0], "anatolia"), strings.Index(lines[1], "12"))
}

func TestWriterPrintsToBuffer(t *testing.T) {
	var buf strings.Builder
	w := NewWriterTo(&buf)

	_, err := w.Printf("%d events\n", 3)
	require.NoError(t, err)
	w.Pager("paged content")

	require.Contains(t, buf.String(), "3 events")
	// Buffers are never paged, content goes straight through.
	require.Contains(t, buf.String(), "paged content")
}
