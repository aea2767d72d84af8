package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"finverse/internal/domain"
)

func testFiling() *domain.ParsedFiling {
	return &domain.ParsedFiling{
		Chunked: domain.ChunkedFiling{
			Metadata: domain.FilingMetadata{
				CIK:     "0000320193",
				Company: "Apple Inc.",
				Ticker:  "AAPL",
				Form:    "10-K",
			},
			Chunks: []domain.Chunk{
				{ChunkID: "item_1_0", Section: "item_1", Text: "Apple designs smartphones.", Tokens: 5, Source: "10-K"},
				{ChunkID: "item_1a_0", Section: "item_1a", Text: "Competition is intense.", Tokens: 4, Source: "10-K"},
			},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testFiling()))

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, BOM))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, BOM)))
	rows, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, []string{"item_1_0", "item_1", "5", "10-K", "Apple designs smartphones."}, rows[1])
	assert.Equal(t, []string{"item_1a_0", "item_1a", "4", "10-K", "Competition is intense."}, rows[2])
}

func TestWriteCSV_NoChunks(t *testing.T) {
	var buf bytes.Buffer
	filing := testFiling()
	filing.Chunked.Chunks = nil

	require.NoError(t, WriteCSV(&buf, filing))

	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), BOM)))
	rows, err := r.ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, testFiling()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.ElementsMatch(t, []string{"Filing", "Chunks"}, f.GetSheetList())

	company, err := f.GetCellValue("Filing", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", company)

	rows, err := f.GetRows("Chunks")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "item_1_0", rows[1][0])
	assert.Equal(t, "Competition is intense.", rows[2][4])
}
