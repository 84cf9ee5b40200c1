// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command rosterctl prints surname rankings and exports roster CSV files
// without starting the server.
//
//	rosterctl top -roster voters.json -n 10
//	rosterctl export -roster voters.csv -surname Patil -o s3://exports/patil.csv
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/pollroster/blob"
	"github.com/danielhkuo/pollroster/cliparse"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/roster"
)

func main() {
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
	}
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

const usage = `usage: rosterctl <command> [flags]

commands:
  top     print the most common surnames
  export  write roster rows as CSV to a file, - or s3://bucket/key
`

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return 2
	}

	var err error
	switch args[0] {
	case "top":
		err = runTop(args[1:], stdout, stderr)
	case "export":
		err = runExport(ctx, args[1:], stdout, stderr)
	default:
		fmt.Fprint(stderr, usage)
		return 2
	}

	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, "rosterctl:", err)
		return 1
	}
	return 0
}

func loadRoster(path string) (*roster.Dashboard, error) {
	if path == "" {
		path = os.Getenv("ROSTER_PATH")
	}
	if path == "" {
		return nil, errors.New("roster path required (use -roster or ROSTER_PATH env)")
	}
	records, err := roster.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return roster.NewDashboard(records), nil
}

func runTop(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("top", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("roster", "", "Voter roster file (.json or .csv)")
	n := fs.Int("n", roster.DefaultTopN, "Number of surnames (4-20)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dash, err := loadRoster(*path)
	if err != nil {
		return err
	}

	total := len(dash.Records())
	top, others := dash.Aggregation().Top(roster.ClampTopN(*n))
	for i, s := range top {
		fmt.Fprintf(stdout, "%2d. %-24s %10s  %s\n", i+1, s.Surname, humanize.Comma(int64(s.Count)), share(s.Count, total))
	}
	if others > 0 {
		fmt.Fprintf(stdout, "    %-24s %10s  %s\n", "Others", humanize.Comma(int64(others)), share(others, total))
	}
	fmt.Fprintf(stdout, "    %-24s %10s\n", "Total", humanize.Comma(int64(total)))
	return nil
}

func share(count, total int) string {
	if total == 0 {
		return "0%"
	}
	return humanize.FtoaWithDigits(float64(count)*100/float64(total), 1) + "%"
}

func runExport(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(stderr)
	path := fs.String("roster", "", "Voter roster file (.json or .csv)")
	surname := fs.String("surname", "", "Export only this surname")
	ids := fs.String("ids", "", "Comma-separated voter ids to export")
	out := fs.String("o", blob.StdoutTarget, "Output: file path, - or s3://bucket/key")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target, err := blob.ParseTarget(*out)
	if err != nil {
		return err
	}

	dash, err := loadRoster(*path)
	if err != nil {
		return err
	}

	records := selectRecords(dash, *surname, *ids)

	var buf bytes.Buffer
	if err := roster.WriteCSV(&buf, records, roster.ExportColumns); err != nil {
		return err
	}

	sink, err := blob.Open(ctx, target, stdout)
	if err != nil {
		return err
	}
	if err := sink.Put(ctx, target.Key, &buf, "text/csv; charset=utf-8"); err != nil {
		return err
	}

	if target.Scheme != "stdout" {
		fmt.Fprintf(stderr, "wrote %s rows to %s\n", humanize.Comma(int64(len(records))), *out)
	}
	return nil
}

func selectRecords(dash *roster.Dashboard, surname, ids string) []models.VoterRecord {
	records := dash.Records()
	if surname != "" {
		records = dash.Members(surname)
	}
	if ids != "" {
		var wanted []string
		for _, id := range strings.Split(ids, ",") {
			if id = strings.TrimSpace(id); id != "" {
				wanted = append(wanted, id)
			}
		}
		records = roster.SelectByID(records, wanted)
	}
	return records
}
