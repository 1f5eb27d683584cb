package formatter

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"cratedig/internal/models"
	"cratedig/internal/shared"
)

// delimiter is the CSV field separator for both import and export.
const delimiter = ';'

// WriteExportCSV writes a playlist export to path: `;`-delimited, CRLF line
// endings, UTF-8. The file is written once at the end of a full pass.
func (f *Formatter) WriteExportCSV(path string, tracks []models.Track) error {
	records := make([][]string, 0, len(tracks)+1)
	records = append(records, ExportHeader)
	for _, track := range tracks {
		records = append(records, f.ExportRow(track))
	}
	return writeRecords(path, records)
}

// WriteEnrichedCSV writes enrichment output to path with the four input
// columns followed by the four discovered columns.
func WriteEnrichedCSV(path string, rows []models.EnrichedRow) error {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, EnrichedHeader)
	for _, row := range rows {
		records = append(records, EnrichedRow(row))
	}
	return writeRecords(path, records)
}

func writeRecords(path string, records [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = delimiter
	writer.UseCRLF = true

	if err := writer.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return writer.Error()
}

// ReadInputCSV reads a `;`-delimited input file and validates its schema.
// The required columns are Track Name, Artist Name, Release Year, and
// Spotify Track ID, in that order. A schema mismatch is a validation error.
func ReadInputCSV(path string) ([]models.InputRow, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = delimiter
	reader.FieldsPerRecord = len(InputHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: malformed CSV %s: %v", shared.ErrValidation, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s is empty, expected header %v", shared.ErrValidation, path, InputHeader)
	}

	for i, want := range InputHeader {
		if !strings.EqualFold(strings.TrimSpace(records[0][i]), want) {
			return nil, fmt.Errorf("%w: column %d is %q, expected %q", shared.ErrValidation, i+1, records[0][i], want)
		}
	}

	rows := make([]models.InputRow, 0, len(records)-1)
	for _, record := range records[1:] {
		rows = append(rows, models.InputRow{
			TrackName:   record[0],
			ArtistName:  record[1],
			ReleaseYear: record[2],
			TrackID:     record[3],
		})
	}
	return rows, nil
}
