package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"finverse/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the header row for chunk exports.
var columns = []string{
	"Chunk ID",
	"Section",
	"Tokens",
	"Source",
	"Text",
}

func chunkToRow(c *domain.Chunk) []string {
	return []string{
		c.ChunkID,
		c.Section,
		strconv.Itoa(c.Tokens),
		c.Source,
		c.Text,
	}
}

// WriteCSV renders the chunked view of a filing as CSV.
func WriteCSV(w io.Writer, filing *domain.ParsedFiling) error {
	if _, err := w.Write(BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return err
	}
	for i := range filing.Chunked.Chunks {
		if err := cw.Write(chunkToRow(&filing.Chunked.Chunks[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX renders the chunked view of a filing as an XLSX workbook with a
// metadata sheet and a chunks sheet.
func WriteXLSX(w io.Writer, filing *domain.ParsedFiling) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	const metaSheet = "Filing"
	const chunkSheet = "Chunks"

	if err := f.SetSheetName("Sheet1", metaSheet); err != nil {
		return err
	}
	meta := filing.Chunked.Metadata
	metaRows := [][]interface{}{
		{"CIK", meta.CIK},
		{"Company", meta.Company},
		{"Ticker", meta.Ticker},
		{"Form", meta.Form},
		{"Chunks", len(filing.Chunked.Chunks)},
	}
	for i, row := range metaRows {
		if err := f.SetSheetRow(metaSheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(chunkSheet); err != nil {
		return err
	}
	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	if err := f.SetSheetRow(chunkSheet, "A1", &header); err != nil {
		return err
	}
	for i := range filing.Chunked.Chunks {
		c := &filing.Chunked.Chunks[i]
		row := []interface{}{c.ChunkID, c.Section, c.Tokens, c.Source, c.Text}
		if err := f.SetSheetRow(chunkSheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
