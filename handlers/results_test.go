// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/Soumyadipgithub/voteverse-eth/models"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
	"github.com/Soumyadipgithub/voteverse-eth/testutil"
)

func getResults(t *testing.T, handler *ResultsHandler, id int64) (*httptest.ResponseRecorder, models.ElectionResult) {
	t.Helper()
	idStr := strconv.FormatInt(id, 10)
	req := testutil.MakeRequest("GET", "/results/"+idStr, nil, nil)
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	handler.GetResults(w, req)

	var resp models.ElectionResult
	if w.Code == http.StatusOK {
		testutil.AssertJSON(t, w, &resp)
	}
	return w, resp
}

// voteN casts n votes for a candidate from n distinct wallets.
func voteN(t *testing.T, voting *VotingHandler, id int64, candidateID int64, n, offset int) {
	t.Helper()
	for i := 0; i < n; i++ {
		wallet := fmt.Sprintf("0x%040x", offset+i+1)
		w := castVote(t, voting, id, wallet, candidateID)
		testutil.AssertStatus(t, w, http.StatusCreated)
	}
}

func TestGetResultsTallies(t *testing.T) {
	reg := testutil.NewRegistry(t)
	cfg := testutil.GetTestConfig()
	voting := NewVotingHandler(reg, cfg)
	handler := NewResultsHandler(reg, cfg)

	id := testutil.CreateTestElection(t, reg, models.StatusActive)
	voteN(t, voting, id, 1, 3, 0) // Alice: 3
	voteN(t, voting, id, 2, 1, 3) // Bob: 1

	w, resp := getResults(t, handler, id)
	testutil.AssertStatus(t, w, http.StatusOK)

	if resp.TotalVotes != 4 {
		t.Errorf("Expected 4 total votes, got %d", resp.TotalVotes)
	}
	if resp.Candidates[0].Votes != 3 || resp.Candidates[1].Votes != 1 {
		t.Errorf("Expected tallies {3, 1}, got {%d, %d}", resp.Candidates[0].Votes, resp.Candidates[1].Votes)
	}
	if resp.Candidates[0].Percentage != 75 || resp.Candidates[1].Percentage != 25 {
		t.Errorf("Expected percentages {75, 25}, got {%v, %v}", resp.Candidates[0].Percentage, resp.Candidates[1].Percentage)
	}

	// Active election: no winner yet.
	if resp.Winner != nil {
		t.Errorf("Active election must not declare a winner, got %+v", resp.Winner)
	}
	if !strings.HasPrefix(resp.Timing, "ends ") {
		t.Errorf("Expected active timing to start with 'ends', got %q", resp.Timing)
	}
}

func TestGetResultsWinner(t *testing.T) {
	reg := testutil.NewRegistry(t)
	cfg := testutil.GetTestConfig()
	voting := NewVotingHandler(reg, cfg)
	handler := NewResultsHandler(reg, cfg)

	id := testutil.CreateTestElection(t, reg, models.StatusActive)
	voteN(t, voting, id, 1, 2, 0)
	voteN(t, voting, id, 2, 5, 2)
	endElection(t, reg, id)

	_, resp := getResults(t, handler, id)
	if resp.Winner == nil {
		t.Fatal("Expected a winner for an ended election with votes")
	}
	if resp.Winner.ID != 2 {
		t.Errorf("Expected candidate 2 to win, got %d", resp.Winner.ID)
	}
	if !strings.HasPrefix(resp.Timing, "ended ") {
		t.Errorf("Expected ended timing, got %q", resp.Timing)
	}
}

func TestGetResultsTieHasNoWinner(t *testing.T) {
	reg := testutil.NewRegistry(t)
	cfg := testutil.GetTestConfig()
	voting := NewVotingHandler(reg, cfg)
	handler := NewResultsHandler(reg, cfg)

	id := testutil.CreateTestElection(t, reg, models.StatusActive)
	voteN(t, voting, id, 1, 2, 0)
	voteN(t, voting, id, 2, 2, 2)
	endElection(t, reg, id)

	_, resp := getResults(t, handler, id)
	if resp.Winner != nil {
		t.Errorf("Tied election must not declare a winner, got %+v", resp.Winner)
	}
}

func TestGetResultsNotFound(t *testing.T) {
	reg := testutil.NewRegistry(t)
	handler := NewResultsHandler(reg, testutil.GetTestConfig())

	w, _ := getResults(t, handler, 999)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListResults(t *testing.T) {
	reg := testutil.NewRegistry(t)
	cfg := testutil.GetTestConfig()
	handler := NewResultsHandler(reg, cfg)

	testutil.CreateTestElection(t, reg, models.StatusActive)
	testutil.CreateTestElection(t, reg, models.StatusEnded)

	// Results are public, no wallet header needed.
	req := testutil.MakeRequest("GET", "/results", nil, nil)
	w := httptest.NewRecorder()
	handler.ListResults(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp []models.ElectionSummary
	testutil.AssertJSON(t, w, &resp)
	if len(resp) != 2 {
		t.Fatalf("Expected 2 summaries, got %d", len(resp))
	}
	if resp[0].Status != models.StatusActive || resp[1].Status != models.StatusEnded {
		t.Errorf("Unexpected statuses: %q, %q", resp[0].Status, resp[1].Status)
	}
}

// endElection drives an election to ended directly on the registry.
func endElection(t *testing.T, reg *registry.Registry, id int64) {
	t.Helper()
	if _, err := reg.EndElection(context.Background(), testutil.AdminWallet, id); err != nil {
		t.Fatalf("EndElection failed: %v", err)
	}
}
