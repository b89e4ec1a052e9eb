// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Soumyadipgithub/voteverse-eth/cliparse"
	"github.com/Soumyadipgithub/voteverse-eth/models"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
)

// Well-formed wallet addresses for tests.
const (
	AdminWallet = "0x1234567890123456789012345678901234567890"
	VoterWallet = "0xabcdefabcdefabcdefabcdefabcdefabcdefabcd"
	OtherWallet = "0x9999999999999999999999999999999999999999"
)

// NewRegistry returns an empty registry with simulated delays disabled.
func NewRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	return registry.New(registry.Options{})
}

// GetTestConfig returns a standard test configuration: default credentials,
// no simulated delays.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          8080,
		AdminUsername: "Admin",
		AdminPassword: "12345",
		SessionTTL:    time.Hour,
		TickInterval:  10 * time.Second,
		SeedDemo:      false,
	}
}

// CreateTestElection creates an election and drives it to the requested
// status ("pending", "active", or "ended"). The window spans one hour either
// side of now.
func CreateTestElection(t *testing.T, reg *registry.Registry, status string) int64 {
	t.Helper()

	now := time.Now()
	e, err := reg.CreateElection(context.Background(), AdminWallet, models.CreateElectionRequest{
		Title:       "Test Election",
		Description: "A test election",
		StartTime:   now.Add(-time.Hour).UnixMilli(),
		EndTime:     now.Add(time.Hour).UnixMilli(),
		Candidates: []models.CandidateInput{
			{Name: "Alice", Party: "Red"},
			{Name: "Bob", Party: "Blue"},
		},
	})
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	if status == models.StatusActive || status == models.StatusEnded {
		if _, err := reg.StartElection(context.Background(), AdminWallet, e.ID); err != nil {
			t.Fatalf("Failed to start test election: %v", err)
		}
	}
	if status == models.StatusEnded {
		if _, err := reg.EndElection(context.Background(), AdminWallet, e.ID); err != nil {
			t.Fatalf("Failed to end test election: %v", err)
		}
	}

	return e.ID
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
