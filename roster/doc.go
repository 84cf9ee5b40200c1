// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package roster aggregates a voter roster by inferred surname and exports
records as CSV.

# Surname extraction

Names are normalized (punctuation removed, trimmed) and split on whitespace.
A TokenIndex built over the whole roster counts first-position and
last-position tokens; ExtractSurname uses it to decide between the first
and last token of each name:

	idx := roster.BuildTokenIndex(records)
	agg := roster.Aggregate(records, roster.IndexedExtractor(idx))
	top, others := agg.Top(roster.ClampTopN(n))

Records with no usable name fall into the "Unknown" bucket. Candidates
containing Devanagari are returned as-is; others get an upper-case first letter.

# CSV

ExportCSV writes ExportColumns (or any field list) with "\n" row
separators. Values are quoted only when they contain a comma or a line
break; embedded quotes are then doubled.
*/
package roster
