// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"slices"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/danielhkuo/pollroster/models"
)

// Dashboard serves read-only views over a roster loaded once at startup.
// The token index and surname buckets are computed on first use.
type Dashboard struct {
	records []models.VoterRecord

	once  sync.Once
	index *TokenIndex
	agg   Aggregation
}

func NewDashboard(records []models.VoterRecord) *Dashboard {
	return &Dashboard{records: records}
}

func (d *Dashboard) build() {
	d.once.Do(func() {
		d.index = BuildTokenIndex(d.records)
		d.agg = Aggregate(d.records, IndexedExtractor(d.index))
	})
}

// Records returns the full roster in load order.
func (d *Dashboard) Records() []models.VoterRecord {
	return d.records
}

// Aggregation returns the memoized surname buckets.
func (d *Dashboard) Aggregation() Aggregation {
	d.build()
	return d.agg
}

// Surname extracts the surname of one record using the roster-wide index.
func (d *Dashboard) Surname(v models.VoterRecord) string {
	d.build()
	return ExtractSurname(v, d.index)
}

// Members returns a copy of the records bucketed under surname.
func (d *Dashboard) Members(surname string) []models.VoterRecord {
	d.build()
	return slices.Clone(d.agg.Buckets[surname])
}

// Search matches the query case-insensitively against both name scripts,
// the relative names and the voter id.
func (d *Dashboard) Search(query string) []models.VoterRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return d.records
	}
	matches := []models.VoterRecord{}
	for _, r := range d.records {
		for _, field := range []models.Text{r.NameEnglish, r.NameMarathi, r.RelativeNameEnglish, r.RelativeNameMarathi, r.VoterID} {
			if strings.Contains(strings.ToLower(string(field)), q) {
				matches = append(matches, r)
				break
			}
		}
	}
	return matches
}

// Age bands used by the summary chart
var ageBands = []struct {
	label    string
	min, max int
}{
	{"18-25", 18, 25},
	{"26-35", 26, 35},
	{"36-45", 36, 45},
	{"46-60", 46, 60},
	{"61+", 61, 200},
}

const unknownLabel = "Unknown"

// Summary counts records per gender and per age band.
func (d *Dashboard) Summary() models.RosterSummary {
	d.build()

	genders := newCounter()
	ages := newCounter()
	for _, b := range ageBands {
		ages.add(b.label, 0)
	}
	for _, r := range d.records {
		gender := strings.TrimSpace(string(r.Gender))
		if gender == "" {
			gender = unknownLabel
		}
		genders.add(gender, 1)
		ages.add(ageBand(string(r.Age)), 1)
	}

	g := genders.buckets()
	sort.SliceStable(g, func(i, j int) bool { return g[i].Count > g[j].Count })

	return models.RosterSummary{
		Total:    len(d.records),
		Surnames: len(d.agg.Ranked),
		Genders:  g,
		AgeBands: ages.buckets(),
	}
}

func ageBand(raw string) string {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return unknownLabel
	}
	for _, b := range ageBands {
		if age >= b.min && age <= b.max {
			return b.label
		}
	}
	return unknownLabel
}

// counter keeps insertion order
type counter struct {
	order  []string
	counts map[string]int
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(label string, n int) {
	if _, ok := c.counts[label]; !ok {
		c.order = append(c.order, label)
	}
	c.counts[label] += n
}

func (c *counter) buckets() []models.CountBucket {
	out := make([]models.CountBucket, 0, len(c.order))
	for _, label := range c.order {
		out = append(out, models.CountBucket{Label: label, Count: c.counts[label]})
	}
	return out
}
