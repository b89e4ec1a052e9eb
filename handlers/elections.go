// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Soumyadipgithub/voteverse-eth/auth"
	"github.com/Soumyadipgithub/voteverse-eth/cliparse"
	"github.com/Soumyadipgithub/voteverse-eth/middleware"
	"github.com/Soumyadipgithub/voteverse-eth/models"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
)

type ElectionHandler struct {
	reg      *registry.Registry
	sessions *auth.Sessions
	cfg      cliparse.Config
}

func NewElectionHandler(reg *registry.Registry, sessions *auth.Sessions, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{reg: reg, sessions: sessions, cfg: cfg}
}

// Login handles POST /admin/login
func (h *ElectionHandler) Login(w http.ResponseWriter, r *http.Request) {
	wallet, ok := requireWallet(w, r)
	if !ok {
		return
	}

	var req models.AdminLoginRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	err := auth.Authenticate(r.Context(), h.cfg.LoginDelay, req.Username, req.Password, h.cfg.AdminUsername, h.cfg.AdminPassword)
	if errors.Is(err, auth.ErrInvalidCredentials) {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid credentials. Please try again.")
		return
	}
	if err != nil {
		return // client went away during the simulated delay
	}

	token := h.sessions.Issue(wallet)
	slog.Info("admin authenticated", "wallet", wallet)

	middleware.JSONResponse(w, http.StatusOK, models.AdminLoginResponse{
		SessionToken: token,
	})
}

// Create handles POST /admin/elections
func (h *ElectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	wallet, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}

	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	election, err := h.reg.CreateElection(r.Context(), wallet, req)
	if err != nil {
		writeRegistryError(w, r, err, "Failed to create election")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		ElectionID: election.ID,
	})
}

// GetAdmin handles GET /admin/elections/:id
// Returns the full record including the voter roll.
func (h *ElectionHandler) GetAdmin(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.requireAdmin(w, r); !ok {
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

	middleware.JSONResponse(w, http.StatusOK, election)
}

// Start handles POST /admin/elections/:id/start
func (h *ElectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "start")
}

// End handles POST /admin/elections/:id/end
func (h *ElectionHandler) End(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "end")
}

func (h *ElectionHandler) transition(w http.ResponseWriter, r *http.Request, action string) {
	wallet, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var election models.Election
	var err error
	var message string
	if action == "start" {
		election, err = h.reg.StartElection(r.Context(), wallet, id)
		message = "Voting started successfully!"
	} else {
		election, err = h.reg.EndElection(r.Context(), wallet, id)
		message = "Voting ended successfully!"
	}
	if err != nil {
		writeRegistryError(w, r, err, "Failed to "+action+" voting")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TransitionResponse{
		ElectionID: election.ID,
		Status:     election.Status,
		Message:    message,
	})
}

// AddCandidate handles POST /admin/elections/:id/candidates
func (h *ElectionHandler) AddCandidate(w http.ResponseWriter, r *http.Request) {
	wallet, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var req models.AddCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	candidate, err := h.reg.AddCandidate(r.Context(), wallet, id, req)
	if err != nil {
		writeRegistryError(w, r, err, "Failed to add candidate")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddCandidateResponse{
		CandidateID: candidate.ID,
	})
}

// AddVoter handles POST /admin/elections/:id/voters
func (h *ElectionHandler) AddVoter(w http.ResponseWriter, r *http.Request) {
	wallet, ok := h.requireAdmin(w, r)
	if !ok {
		return
	}
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	var req models.AddVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !auth.ValidWalletAddress(req.Address) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Please enter a valid wallet address")
		return
	}

	voter, err := h.reg.AddVoter(r.Context(), wallet, id, req.Address)
	if err != nil {
		writeRegistryError(w, r, err, "Failed to add voter")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.AddVoterResponse{
		Address: voter.Address,
	})
}

// requireAdmin extracts the connected wallet and checks the admin session.
// The registry itself only gates on wallet presence; this is where admin
// elevation is actually enforced.
func (h *ElectionHandler) requireAdmin(w http.ResponseWriter, r *http.Request) (string, bool) {
	wallet, ok := requireWallet(w, r)
	if !ok {
		return "", false
	}

	token := r.Header.Get(middleware.AdminTokenHeader)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, middleware.AdminTokenHeader+" header required")
		return "", false
	}
	if err := h.sessions.Verify(token, wallet); err != nil {
		if errors.Is(err, auth.ErrWalletMismatch) {
			slog.Warn("admin session revoked, wallet changed", "wallet", wallet)
		}
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Admin session invalid or expired")
		return "", false
	}
	return wallet, true
}

// requireWallet extracts and shape-checks the connected wallet address.
func requireWallet(w http.ResponseWriter, r *http.Request) (string, bool) {
	wallet := middleware.WalletAddress(r)
	if wallet == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Please connect your wallet first!")
		return "", false
	}
	if !auth.ValidWalletAddress(wallet) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid wallet address")
		return "", false
	}
	return wallet, true
}

func electionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid election id")
		return 0, false
	}
	return id, true
}
