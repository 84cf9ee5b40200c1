// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/danielhkuo/pollroster/models"
)

var ErrUnsupportedFormat = errors.New("roster must be a .json or .csv file")

// LoadFile reads a roster from a JSON array or a CSV file with a header row.
func LoadFile(path string) ([]models.VoterRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return DecodeJSON(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DecodeJSON reads a JSON array of voter records.
func DecodeJSON(r io.Reader) ([]models.VoterRecord, error) {
	var records []models.VoterRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to parse roster JSON: %w", err)
	}
	if records == nil {
		records = []models.VoterRecord{}
	}
	return records, nil
}

// DecodeCSV reads records from CSV. Columns are matched by header name;
// unknown columns are ignored.
func DecodeCSV(r io.Reader) ([]models.VoterRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []models.VoterRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read roster header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	records := []models.VoterRecord{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read roster row %d: %w", len(records)+2, err)
		}
		var rec models.VoterRecord
		for i, value := range row {
			if i < len(header) {
				rec.SetField(header[i], value)
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
