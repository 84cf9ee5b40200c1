// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/pollroster/cliparse"
	"github.com/danielhkuo/pollroster/db"
	"github.com/danielhkuo/pollroster/ident"
	"github.com/danielhkuo/pollroster/models"
	"github.com/danielhkuo/pollroster/polls"
	"github.com/danielhkuo/pollroster/roster"
)

// TestOrigin is the public origin share links are built against in tests
const TestOrigin = "http://polls.test"

// SetupTestStore returns a poll store over a fresh in-memory backend
func SetupTestStore(t *testing.T) *polls.Store {
	t.Helper()
	return polls.NewStore(db.NewMemoryBackend())
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeMemory,
		PublicOrigin: TestOrigin,
	}
}

// CreateTestPoll creates a poll with the given option labels and returns it
func CreateTestPoll(t *testing.T, store *polls.Store, title string, labels ...string) models.Poll {
	t.Helper()

	poll, err := store.Create(context.Background(), title, labels)
	if err != nil {
		t.Fatalf("Failed to create test poll: %v", err)
	}
	return poll
}

// NewDevice returns request headers carrying a fresh device id
func NewDevice() map[string]string {
	return map[string]string{"X-Device-UUID": ident.NewDeviceID()}
}

// SampleRoster is a small roster that buckets as Patil (3), Joshi,
// पाटील and Unknown, in that order.
func SampleRoster() []models.VoterRecord {
	rec := func(id, name, marathi, gender, age string) models.VoterRecord {
		return models.VoterRecord{
			VoterID:     models.Text(id),
			NameEnglish: models.Text(name),
			NameMarathi: models.Text(marathi),
			Gender:      models.Text(gender),
			Age:         models.Text(age),
			PartNo:      "12",
			BoxNumber:   models.Text(id[len(id)-1:]),
		}
	}
	return []models.VoterRecord{
		rec("ABC1", "Patil Ramesh", "", "M", "34"),
		rec("ABC2", "Patil Sunita", "", "F", "29"),
		rec("ABC3", "Patil Ganesh Rao", "", "M", "61"),
		rec("ABC4", "Joshi Anil Kumar", "", "M", "45"),
		rec("ABC5", "", "पाटील सुरेश रमेश", "M", "52"),
		rec("ABC6", "", "", "", ""),
	}
}

// SetupTestDashboard returns a dashboard over SampleRoster
func SetupTestDashboard(t *testing.T) *roster.Dashboard {
	t.Helper()
	return roster.NewDashboard(SampleRoster())
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
