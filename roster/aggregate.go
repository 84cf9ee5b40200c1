// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"slices"
	"sort"

	"github.com/danielhkuo/pollroster/models"
)

// Top-N bounds for ranked surname views
const (
	DefaultTopN = 8
	MinTopN     = 4
	MaxTopN     = 20
)

// Aggregation groups roster records by extracted surname.
type Aggregation struct {
	Buckets map[string][]models.VoterRecord
	// Ranked is sorted by descending count; equal counts keep the order in
	// which the surname was first seen.
	Ranked []models.SurnameCount
}

// Extractor maps a record to its surname.
type Extractor func(models.VoterRecord) string

// IndexedExtractor binds ExtractSurname to a frequency index.
func IndexedExtractor(idx *TokenIndex) Extractor {
	return func(v models.VoterRecord) string {
		return ExtractSurname(v, idx)
	}
}

// Aggregate buckets every record. Bucket sizes always sum to len(records).
func Aggregate(records []models.VoterRecord, extract Extractor) Aggregation {
	buckets := make(map[string][]models.VoterRecord)
	var order []string
	for _, r := range records {
		surname := extract(r)
		if _, seen := buckets[surname]; !seen {
			order = append(order, surname)
		}
		buckets[surname] = append(buckets[surname], r)
	}

	ranked := make([]models.SurnameCount, 0, len(order))
	for _, surname := range order {
		ranked = append(ranked, models.SurnameCount{Surname: surname, Count: len(buckets[surname])})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return Aggregation{Buckets: buckets, Ranked: ranked}
}

// Top returns the first n ranked surnames and the number of records
// outside them. The returned slice is a copy.
func (a Aggregation) Top(n int) (top []models.SurnameCount, others int) {
	if n < 0 {
		n = 0
	}
	if n > len(a.Ranked) {
		n = len(a.Ranked)
	}
	for _, sc := range a.Ranked[n:] {
		others += sc.Count
	}
	return slices.Clone(a.Ranked[:n]), others
}

// ClampTopN keeps a requested top-N inside the range the dashboard allows.
// Zero selects the default.
func ClampTopN(n int) int {
	switch {
	case n == 0:
		return DefaultTopN
	case n < MinTopN:
		return MinTopN
	case n > MaxTopN:
		return MaxTopN
	}
	return n
}
