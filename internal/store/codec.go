package store

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/avolette/jobtrack/internal/models"
)

// csvHeader is the fixed column order of the dataset-at-rest.
var csvHeader = []string{"id", "company", "position", "location", "submission_date", "notes", "rejected"}

// EncodeCSV serializes rows to the flat-file format: fixed header row,
// dates as YYYY-MM-DD, rejected as the literal tokens True/False.
func EncodeCSV(rows []models.Application) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, app := range rows {
		record := []string{
			app.ID,
			app.Company,
			app.Position,
			app.Location,
			app.SubmittedOn(),
			app.Notes,
			formatRejected(app.Rejected),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeCSV parses flat-file content back into an ordered record sequence.
//
// Empty content decodes to an empty dataset.
func DecodeCSV(data []byte) ([]models.Application, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Application{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = len(csvHeader)

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return []models.Application{}, nil
	}

	if err := checkHeader(records[0]); err != nil {
		return nil, err
	}

	rows := make([]models.Application, 0, len(records)-1)
	for i, record := range records[1:] {
		app, err := decodeRecord(record)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, app)
	}

	return rows, nil
}

func checkHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("unexpected CSV header: %v", header)
	}
	for i, col := range csvHeader {
		if header[i] != col {
			return fmt.Errorf("unexpected CSV column %d: got %q, want %q", i, header[i], col)
		}
	}
	return nil
}

func decodeRecord(record []string) (models.Application, error) {
	submitted, err := models.ParseDate(record[4])
	if err != nil {
		return models.Application{}, err
	}

	rejected, err := parseRejected(record[6])
	if err != nil {
		return models.Application{}, err
	}

	return models.Application{
		ID:             record[0],
		Company:        record[1],
		Position:       record[2],
		Location:       record[3],
		SubmissionDate: submitted,
		Notes:          record[5],
		Rejected:       rejected,
	}, nil
}

func formatRejected(rejected bool) string {
	if rejected {
		return "True"
	}
	return "False"
}

func parseRejected(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false", "":
		return false, nil
	default:
		return false, fmt.Errorf("invalid rejected value %q", value)
	}
}
