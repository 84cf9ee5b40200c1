// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package roster

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/danielhkuo/pollroster/models"
)

// UnknownSurname is returned for records whose name normalizes to nothing.
const UnknownSurname = "Unknown"

const strippedChars = ".,/\\()[]\"'`:-"

// Normalize removes punctuation from a raw name and trims it.
func Normalize(raw string) string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedChars, r) {
			return -1
		}
		return r
	}, raw)
	return strings.TrimSpace(stripped)
}

// Tokens normalizes the name and splits it on runs of whitespace.
func Tokens(raw string) []string {
	return strings.Fields(Normalize(raw))
}

// DisplayName picks the Latin-script name, falling back to the Marathi one
// when the English field is empty.
func DisplayName(v models.VoterRecord) string {
	if v.NameEnglish != "" {
		return string(v.NameEnglish)
	}
	return string(v.NameMarathi)
}

// TokenIndex counts how often each token opens and closes a name across
// the whole roster.
type TokenIndex struct {
	First map[string]int
	Last  map[string]int
}

// BuildTokenIndex scans every record once. Records without tokens add nothing.
func BuildTokenIndex(records []models.VoterRecord) *TokenIndex {
	idx := &TokenIndex{
		First: make(map[string]int),
		Last:  make(map[string]int),
	}
	for _, r := range records {
		tokens := Tokens(DisplayName(r))
		if len(tokens) == 0 {
			continue
		}
		idx.First[tokens[0]]++
		idx.Last[tokens[len(tokens)-1]]++
	}
	return idx
}

// ExtractSurname guesses the family name of a record. idx may be nil.
//
// A trailing token of at most two characters is treated as an initial and
// replaced by the first token. With an index, the first token wins when it
// is more common as a first token than the candidate is as a last token;
// on a tie, names of three or more tokens take the first token.
func ExtractSurname(v models.VoterRecord, idx *TokenIndex) string {
	tokens := Tokens(DisplayName(v))
	if len(tokens) == 0 {
		return UnknownSurname
	}

	first := tokens[0]
	last := tokens[len(tokens)-1]
	if utf8.RuneCountInString(last) <= 2 && len(tokens) > 1 {
		last = first
	}

	candidate := last
	if idx != nil {
		firstFreq := idx.First[first]
		lastFreq := idx.Last[last]
		switch {
		case firstFreq > lastFreq:
			candidate = first
		case firstFreq == lastFreq:
			if len(tokens) >= 3 {
				candidate = first
			}
		}
	} else if len(tokens) >= 3 {
		candidate = first
	}

	if hasDevanagari(candidate) {
		return candidate
	}
	return capitalize(candidate)
}

func hasDevanagari(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Devanagari, r) {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first character and leaves the rest unchanged.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return strings.ToUpper(string(r)) + s[size:]
}
