// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AdminLoginRequest: username, password
  - CreateElectionRequest: title, description, start_time, end_time, candidates
  - AddCandidateRequest: name, party
  - AddVoterRequest: address
  - CastVoteRequest: candidate_id

# Response Types

Types for JSON responses:

  - AdminLoginResponse: session_token
  - CreateElectionResponse: election_id
  - AddCandidateResponse: candidate_id
  - CastVoteResponse: election_id, candidate_id, message
  - TransitionResponse: election_id, status, message
  - ElectionResult / ElectionSummary: vote tallies and timing
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Election: timed voting contest with candidates, voters, and a status
  - Candidate: option within an election, accruing a vote count
  - Voter: one identity's participation state in one election

Timestamps are epoch milliseconds throughout.

# Constants

Status values:

	StatusPending = "pending"
	StatusActive  = "active"
	StatusEnded   = "ended"
*/
package models
