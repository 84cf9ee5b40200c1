// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"bufio"
	"io"
	"strings"

	"github.com/danielhkuo/pollroster/models"
)

// ExportColumns is the fixed column order of roster CSV exports.
var ExportColumns = []string{
	"box_number",
	"name_english",
	"name_marathi",
	"relative_name_english",
	"relative_name_marathi",
	"voter_id",
	"part_no",
	"age",
	"gender",
	"address",
}

// ExportCSV renders a header row from fields and one row per record, rows
// separated by "\n". Missing values render empty.
func ExportCSV(records []models.VoterRecord, fields []string) string {
	var sb strings.Builder
	// strings.Builder never returns write errors
	_ = WriteCSV(&sb, records, fields)
	return sb.String()
}

// WriteCSV streams the same output as ExportCSV.
func WriteCSV(w io.Writer, records []models.VoterRecord, fields []string) error {
	bw := bufio.NewWriter(w)

	writeRow := func(values []string) {
		for i, v := range values {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(escapeCSV(v))
		}
	}

	writeRow(fields)
	values := make([]string, len(fields))
	for _, r := range records {
		for i, f := range fields {
			values[i], _ = r.Field(f)
		}
		bw.WriteByte('\n')
		writeRow(values)
	}
	return bw.Flush()
}

// escapeCSV quotes a value only when it contains a comma, LF or CR.
func escapeCSV(v string) string {
	if !strings.ContainsAny(v, ",\n\r") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// SelectByID keeps the records whose voter_id is in ids, in roster order.
func SelectByID(records []models.VoterRecord, ids []string) []models.VoterRecord {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	selected := make([]models.VoterRecord, 0, len(ids))
	for _, r := range records {
		if wanted[string(r.VoterID)] {
			selected = append(selected, r)
		}
	}
	return selected
}
