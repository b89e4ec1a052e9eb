// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Soumyadipgithub/voteverse-eth/auth"
	"github.com/Soumyadipgithub/voteverse-eth/cliparse"
	"github.com/Soumyadipgithub/voteverse-eth/handlers"
	"github.com/Soumyadipgithub/voteverse-eth/middleware"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
)

func NewRouter(reg *registry.Registry, sessions *auth.Sessions, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(reg, sessions, cfg)
	votingHandler := handlers.NewVotingHandler(reg, cfg)
	resultsHandler := handlers.NewResultsHandler(reg, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Admin operations
	mux.HandleFunc("POST /admin/login", middleware.WithLogging(electionHandler.Login))
	mux.HandleFunc("POST /admin/elections", middleware.WithLogging(electionHandler.Create))
	mux.HandleFunc("GET /admin/elections/{id}", middleware.WithLogging(electionHandler.GetAdmin))
	mux.HandleFunc("POST /admin/elections/{id}/start", middleware.WithLogging(electionHandler.Start))
	mux.HandleFunc("POST /admin/elections/{id}/end", middleware.WithLogging(electionHandler.End))
	mux.HandleFunc("POST /admin/elections/{id}/candidates", middleware.WithLogging(electionHandler.AddCandidate))
	mux.HandleFunc("POST /admin/elections/{id}/voters", middleware.WithLogging(electionHandler.AddVoter))

	// Voting operations (connected wallet required)
	mux.HandleFunc("GET /voter/elections", middleware.WithLogging(votingHandler.ListElections))
	mux.HandleFunc("GET /voter/elections/{id}", middleware.WithLogging(votingHandler.GetElection))
	mux.HandleFunc("POST /voter/elections/{id}/vote", middleware.WithLogging(votingHandler.CastVote))

	// Results (public)
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.ListResults))
	mux.HandleFunc("GET /results/{id}", middleware.WithLogging(resultsHandler.GetResults))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("voteverse API v1"))
	})

	return mux
}
