// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Soumyadipgithub/voteverse-eth/middleware"
	"github.com/Soumyadipgithub/voteverse-eth/models"
	"github.com/Soumyadipgithub/voteverse-eth/testutil"
)

func walletHeaders(wallet string) map[string]string {
	return map[string]string{middleware.WalletHeader: wallet}
}

func castVote(t *testing.T, handler *VotingHandler, id int64, wallet string, candidateID int64) *httptest.ResponseRecorder {
	t.Helper()
	idStr := strconv.FormatInt(id, 10)
	req := testutil.MakeRequest("POST", "/voter/elections/"+idStr+"/vote",
		models.CastVoteRequest{CandidateID: candidateID}, walletHeaders(wallet))
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()
	handler.CastVote(w, req)
	return w
}

func TestCastVoteHandler(t *testing.T) {
	reg := testutil.NewRegistry(t)
	handler := NewVotingHandler(reg, testutil.GetTestConfig())
	id := testutil.CreateTestElection(t, reg, models.StatusActive)

	// First vote lands on candidate 1.
	w := castVote(t, handler, id, testutil.VoterWallet, 1)
	testutil.AssertStatus(t, w, http.StatusCreated)

	e, _ := reg.Election(id)
	if e.Candidates[0].Votes != 1 || e.Candidates[1].Votes != 0 {
		t.Errorf("Expected votes {1, 0}, got {%d, %d}", e.Candidates[0].Votes, e.Candidates[1].Votes)
	}

	// Second attempt by the same wallet, different candidate: rejected,
	// nothing changes.
	w = castVote(t, handler, id, testutil.VoterWallet, 2)
	testutil.AssertStatus(t, w, http.StatusConflict)

	e, _ = reg.Election(id)
	if e.Candidates[0].Votes != 1 || e.Candidates[1].Votes != 0 {
		t.Errorf("Repeat vote changed tallies: {%d, %d}", e.Candidates[0].Votes, e.Candidates[1].Votes)
	}

	// A different wallet can still vote.
	w = castVote(t, handler, id, testutil.OtherWallet, 2)
	testutil.AssertStatus(t, w, http.StatusCreated)
}

func TestCastVoteHandlerRejections(t *testing.T) {
	reg := testutil.NewRegistry(t)
	handler := NewVotingHandler(reg, testutil.GetTestConfig())
	pendingID := testutil.CreateTestElection(t, reg, models.StatusPending)
	activeID := testutil.CreateTestElection(t, reg, models.StatusActive)

	tests := []struct {
		name           string
		electionID     int64
		wallet         string
		candidateID    int64
		expectedStatus int
	}{
		{"pending election", pendingID, testutil.VoterWallet, 1, http.StatusConflict},
		{"unknown election", 999, testutil.VoterWallet, 1, http.StatusNotFound},
		{"unknown candidate", activeID, testutil.VoterWallet, 42, http.StatusNotFound},
		{"no wallet", activeID, "", 1, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idStr := strconv.FormatInt(tt.electionID, 10)
			headers := map[string]string{}
			if tt.wallet != "" {
				headers[middleware.WalletHeader] = tt.wallet
			}
			req := testutil.MakeRequest("POST", "/voter/elections/"+idStr+"/vote",
				models.CastVoteRequest{CandidateID: tt.candidateID}, headers)
			req.SetPathValue("id", idStr)
			w := httptest.NewRecorder()

			handler.CastVote(w, req)
			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

func TestListElectionsHidesVoterRoll(t *testing.T) {
	reg := testutil.NewRegistry(t)
	handler := NewVotingHandler(reg, testutil.GetTestConfig())
	id := testutil.CreateTestElection(t, reg, models.StatusActive)

	testutil.AssertStatus(t, castVote(t, handler, id, testutil.VoterWallet, 1), http.StatusCreated)

	req := testutil.MakeRequest("GET", "/voter/elections", nil, walletHeaders(testutil.VoterWallet))
	w := httptest.NewRecorder()
	handler.ListElections(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var views []struct {
		models.Election
		HasVoted bool `json:"has_voted"`
	}
	testutil.AssertJSON(t, w, &views)
	if len(views) != 1 {
		t.Fatalf("Expected 1 election, got %d", len(views))
	}
	if len(views[0].Voters) != 0 {
		t.Error("Voter roll leaked into the voter-facing listing")
	}
	if !views[0].HasVoted {
		t.Error("Expected has_voted=true for the calling wallet")
	}

	// Another wallet sees has_voted=false for the same election.
	req = testutil.MakeRequest("GET", "/voter/elections", nil, walletHeaders(testutil.OtherWallet))
	w = httptest.NewRecorder()
	handler.ListElections(w, req)
	testutil.AssertJSON(t, w, &views)
	if views[0].HasVoted {
		t.Error("Expected has_voted=false for a wallet that has not voted")
	}
}

func TestGetElection(t *testing.T) {
	reg := testutil.NewRegistry(t)
	handler := NewVotingHandler(reg, testutil.GetTestConfig())
	id := testutil.CreateTestElection(t, reg, models.StatusActive)
	idStr := strconv.FormatInt(id, 10)

	req := testutil.MakeRequest("GET", "/voter/elections/"+idStr, nil, walletHeaders(testutil.VoterWallet))
	req.SetPathValue("id", idStr)
	w := httptest.NewRecorder()

	handler.GetElection(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var view struct {
		models.Election
		HasVoted bool `json:"has_voted"`
	}
	testutil.AssertJSON(t, w, &view)
	if view.ID != id {
		t.Errorf("Expected election %d, got %d", id, view.ID)
	}
	if len(view.Candidates) != 2 {
		t.Errorf("Expected 2 candidates, got %d", len(view.Candidates))
	}
}
