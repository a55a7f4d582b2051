// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tertty/ROCK-the-Vote-backend/cliparse"
	"github.com/tertty/ROCK-the-Vote-backend/db"
)

// TestDBURL is an in-memory SQLite database, private to one connection
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh in-memory database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// PostgresURL returns RTV_TEST_POSTGRES_URL or skips the test
func PostgresURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("RTV_TEST_POSTGRES_URL")
	if url == "" {
		t.Skip("RTV_TEST_POSTGRES_URL not set")
	}
	return url
}

// RedisURL returns RTV_TEST_REDIS_URL or skips the test
func RedisURL(t *testing.T) string {
	t.Helper()
	url := os.Getenv("RTV_TEST_REDIS_URL")
	if url == "" {
		t.Skip("RTV_TEST_REDIS_URL not set")
	}
	return url
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8000,
		DatabaseType: db.TypeSQLite,
		DatabaseURL:  TestDBURL,
		Timezone:     "UTC",
		VoterIDSalt:  "test-voter-salt",
		LogFormat:    "text",
	}
}

// Clock is a settable clock for driving day changes in tests
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock starts at noon UTC on the given date
func NewClock(year int, month time.Month, day int) *Clock {
	return &Clock{now: time.Date(year, month, day, 12, 0, 0, 0, time.UTC)}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Advance moves the clock forward by d
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
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
