// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the VoteVerse API.

# Handler Types

Each handler is a struct with registry and config dependencies:

  - ElectionHandler: admin login and election lifecycle (create, start, end,
    add candidate, add voter)
  - VotingHandler: election listing and vote casting
  - ResultsHandler: public vote tallies

Handlers are created via constructor functions:

	electionHandler := handlers.NewElectionHandler(reg, sessions, cfg)

# Election Lifecycle

Elections progress through three states: pending → active → ended

	POST /admin/login                      → Login (returns session_token)
	POST /admin/elections                  → Create
	POST /admin/elections/{id}/start       → Start
	POST /admin/elections/{id}/end         → End
	POST /admin/elections/{id}/candidates  → AddCandidate (pending only)
	POST /admin/elections/{id}/voters      → AddVoter

Admin operations require both the X-Wallet-Address and X-Admin-Token headers.
The registry itself only checks wallet presence; admin elevation is enforced
here, at the API boundary.

# Voting Flow

Voters interact with their connected wallet:

	GET  /voter/elections            → ListElections
	GET  /voter/elections/{id}       → GetElection
	POST /voter/elections/{id}/vote  → CastVote

One vote per wallet per election; a second attempt is rejected with 409.

# Results

Results are public and computed on read:

	GET /results       → ListResults
	GET /results/{id}  → GetResults (tallies, percentages, winner when ended)
*/
package handlers
