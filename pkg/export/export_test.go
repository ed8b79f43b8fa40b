package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCSVExporterQuotesEmbeddedCommas(t *testing.T) {
	data := Dataset{
		Headers: []string{"code", "title"},
		Rows: [][]string{
			{"CS101", "Algorithms, Part I"},
		},
	}

	out, err := NewCSVExporter().Render(data)
	require.NoError(t, err)

	assert.Equal(t, "code,title\nCS101,\"Algorithms, Part I\"\n", string(out))
}

func TestCSVExporterRequiresHeaders(t *testing.T) {
	_, err := NewCSVExporter().Render(Dataset{})
	assert.Error(t, err)
}

func TestXLSXExporterWritesSheet(t *testing.T) {
	data := Dataset{
		Title:   "Students",
		Headers: []string{"id", "fullName"},
		Rows: [][]string{
			{"S1", "Alice"},
			{"S2", "Bob"},
		},
	}

	out, err := NewXLSXExporter().Render(data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetCellValue("Students", "B3")
	require.NoError(t, err)
	assert.Equal(t, "Bob", got)
}

func TestPDFExporterProducesDocument(t *testing.T) {
	data := Dataset{
		Title:   "Transcript\nAlice (S1)",
		Headers: []string{"course", "grade"},
		Rows: [][]string{
			{"CS101", "A"},
		},
	}

	out, err := NewPDFExporter().Render(data)
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
