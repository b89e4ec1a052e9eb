// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/Soumyadipgithub/voteverse-eth/cliparse"
	"github.com/Soumyadipgithub/voteverse-eth/middleware"
	"github.com/Soumyadipgithub/voteverse-eth/models"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
)

type VotingHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewVotingHandler(reg *registry.Registry, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{reg: reg, cfg: cfg}
}

// voterElection is the voter-facing view: the voter roll stays private,
// only the caller's own participation state is echoed back.
type voterElection struct {
	models.Election
	Voters   []models.Voter `json:"voters,omitempty"`
	HasVoted bool           `json:"has_voted"`
}

func voterView(e models.Election, wallet string) voterElection {
	view := voterElection{Election: e}
	if v := e.Voter(wallet); v != nil {
		view.HasVoted = v.HasVoted
	}
	view.Election.Voters = nil
	return view
}

// ListElections handles GET /voter/elections
func (h *VotingHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	wallet, ok := requireWallet(w, r)
	if !ok {
		return
	}

	elections := h.reg.Elections()
	views := make([]voterElection, 0, len(elections))
	for _, e := range elections {
		views = append(views, voterView(e, wallet))
	}

	middleware.JSONResponse(w, http.StatusOK, views)
}

// GetElection handles GET /voter/elections/:id
func (h *VotingHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	wallet, ok := requireWallet(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	election, err := h.reg.Election(id)
	if err != nil {
		writeRegistryError(w, r, err, "Failed to load election")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, voterView(election, wallet))
}

// CastVote handles POST /voter/elections/:id/vote
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	wallet, ok := requireWallet(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	_, err := h.reg.CastVote(r.Context(), wallet, id, req.CandidateID)
	if err != nil {
		writeRegistryError(w, r, err, "Failed to cast vote")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		ElectionID:  id,
		CandidateID: req.CandidateID,
		Message:     "Vote cast successfully!",
	})
}
