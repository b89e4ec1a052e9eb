// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Soumyadipgithub/voteverse-eth/middleware"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
)

// registryStatus maps each registry precondition failure to an HTTP status
// and the user-facing message the original UI showed for it.
var registryStatus = map[error]struct {
	code    int
	message string
}{
	registry.ErrWalletRequired:      {http.StatusUnauthorized, "Please connect your wallet first!"},
	registry.ErrElectionNotFound:    {http.StatusNotFound, "Election not found!"},
	registry.ErrElectionNotActive:   {http.StatusConflict, "This election is not currently active!"},
	registry.ErrElectionEnded:       {http.StatusConflict, "This election has already ended!"},
	registry.ErrElectionNotPending:  {http.StatusConflict, "Cannot add candidates to an active or ended election!"},
	registry.ErrAlreadyVoted:        {http.StatusConflict, "You have already voted in this election!"},
	registry.ErrCandidateNotFound:   {http.StatusNotFound, "Candidate not found!"},
	registry.ErrVoterRegistered:     {http.StatusConflict, "This voter is already registered!"},
	registry.ErrMissingFields:       {http.StatusBadRequest, "Please fill in all required fields"},
	registry.ErrInvalidTimeRange:    {http.StatusBadRequest, "End time must be after start time"},
	registry.ErrNotEnoughCandidates: {http.StatusBadRequest, "Please add at least two candidates"},
	registry.ErrCandidateName:       {http.StatusBadRequest, "Candidate name is required"},
}

// writeRegistryError translates a registry error into a JSON error response.
// Precondition failures get their specific message; anything unexpected is
// logged and reported generically.
func writeRegistryError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	for sentinel, st := range registryStatus {
		if errors.Is(err, sentinel) {
			middleware.ErrorResponse(w, st.code, st.message)
			return
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Client gave up during the simulated delay; nothing was committed.
		return
	}
	slog.Error("operation failed", "path", r.URL.Path, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, fallback)
}
