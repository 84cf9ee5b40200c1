// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Request types

type CreatePollRequest struct {
	Title   string   `json:"title"`
	Options []string `json:"options"`
}

type VoteRequest struct {
	OptionID string `json:"option_id"`
}

type SetVotesRequest struct {
	Votes int `json:"votes"`
}

type ExportRequest struct {
	VoterIDs []string `json:"voter_ids"`
}

// Response types

type PollSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	CreatedAt  time.Time `json:"createdAt"`
	CreatedAgo string    `json:"created_ago"`
	TotalVotes int       `json:"total_votes"`
}

type PollDetailResponse struct {
	Poll         Poll        `json:"poll"`
	Results      PollResults `json:"results"`
	DeviceChoice *string     `json:"device_choice,omitempty"`
}

type VoteResponse struct {
	Poll     Poll        `json:"poll"`
	Results  PollResults `json:"results"`
	OptionID string      `json:"option_id"`
}

type ShareResponse struct {
	ShareURL string `json:"share_url"`
}

type SurnamesResponse struct {
	Top    int            `json:"top"`
	Total  int            `json:"total"`
	Ranked []SurnameCount `json:"ranked"`
	Others int            `json:"others"`
}

type MembersResponse struct {
	Surname string        `json:"surname"`
	Count   int           `json:"count"`
	Records []VoterRecord `json:"records"`
}

// Domain types

// Poll is stored as part of the polls_v1 JSON array. Field names match the
// share-link payload so links stay compatible across stores.
type Poll struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	Options   []Option  `json:"options"`
}

type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Votes int    `json:"votes"`
}

// TotalVotes sums option counters
func (p Poll) TotalVotes() int {
	total := 0
	for _, o := range p.Options {
		total += o.Votes
	}
	return total
}

type OptionResult struct {
	OptionID string `json:"option_id"`
	Label    string `json:"label"`
	Votes    int    `json:"votes"`
	Percent  int    `json:"percent"`
}

type PollResults struct {
	Total   int            `json:"total"`
	Options []OptionResult `json:"options"`
}

// Change is delivered to store subscribers after every save.
type Change struct {
	Key string    `json:"key"`
	At  time.Time `json:"at"`
}

// VoterRecord is one roster row. Rosters are read-only.
type VoterRecord struct {
	VoterID             Text  `json:"voter_id"`
	BoxNumber           Text  `json:"box_number"`
	NameEnglish         Text  `json:"name_english"`
	NameMarathi         Text  `json:"name_marathi"`
	RelativeNameEnglish Text  `json:"relative_name_english"`
	RelativeNameMarathi Text  `json:"relative_name_marathi"`
	PartNo              Text  `json:"part_no"`
	Age                 Text  `json:"age"`
	Gender              Text  `json:"gender"`
	Address             Text  `json:"address"`
	Photo               *Text `json:"photo,omitempty"`
}

// Field returns the named column value. ok is false for unknown names.
func (v VoterRecord) Field(name string) (value string, ok bool) {
	switch name {
	case "voter_id":
		return string(v.VoterID), true
	case "box_number":
		return string(v.BoxNumber), true
	case "name_english":
		return string(v.NameEnglish), true
	case "name_marathi":
		return string(v.NameMarathi), true
	case "relative_name_english":
		return string(v.RelativeNameEnglish), true
	case "relative_name_marathi":
		return string(v.RelativeNameMarathi), true
	case "part_no":
		return string(v.PartNo), true
	case "age":
		return string(v.Age), true
	case "gender":
		return string(v.Gender), true
	case "address":
		return string(v.Address), true
	case "photo":
		if v.Photo == nil {
			return "", true
		}
		return string(*v.Photo), true
	}
	return "", false
}

// SetField assigns the named column. Unknown names are ignored.
func (v *VoterRecord) SetField(name, value string) {
	switch name {
	case "voter_id":
		v.VoterID = Text(value)
	case "box_number":
		v.BoxNumber = Text(value)
	case "name_english":
		v.NameEnglish = Text(value)
	case "name_marathi":
		v.NameMarathi = Text(value)
	case "relative_name_english":
		v.RelativeNameEnglish = Text(value)
	case "relative_name_marathi":
		v.RelativeNameMarathi = Text(value)
	case "part_no":
		v.PartNo = Text(value)
	case "age":
		v.Age = Text(value)
	case "gender":
		v.Gender = Text(value)
	case "address":
		v.Address = Text(value)
	case "photo":
		if value != "" {
			t := Text(value)
			v.Photo = &t
		}
	}
}

// Text is a roster value that may arrive as a JSON string, number, bool or null.
// null decodes to the empty string.
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*t = Text(n.String())
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*t = Text(strconv.FormatBool(b))
	return nil
}

type SurnameCount struct {
	Surname string `json:"surname"`
	Count   int    `json:"count"`
}

type CountBucket struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RosterSummary feeds the dashboard charts.
type RosterSummary struct {
	Total    int           `json:"total"`
	Surnames int           `json:"surnames"`
	Genders  []CountBucket `json:"genders"`
	AgeBands []CountBucket `json:"age_bands"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
