// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Election status constants
const (
	StatusPending = "pending"
	StatusActive  = "active"
	StatusEnded   = "ended"
)

// Request types

type AdminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CandidateInput struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

type CreateElectionRequest struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	StartTime   int64            `json:"start_time"` // epoch milliseconds
	EndTime     int64            `json:"end_time"`   // epoch milliseconds
	Candidates  []CandidateInput `json:"candidates"`
}

type AddCandidateRequest struct {
	Name  string `json:"name"`
	Party string `json:"party"`
}

type AddVoterRequest struct {
	Address string `json:"address"`
}

type CastVoteRequest struct {
	CandidateID int64 `json:"candidate_id"`
}

// Response types

type AdminLoginResponse struct {
	SessionToken string `json:"session_token"`
}

type CreateElectionResponse struct {
	ElectionID int64 `json:"election_id"`
}

type AddCandidateResponse struct {
	CandidateID int64 `json:"candidate_id"`
}

type AddVoterResponse struct {
	Address string `json:"address"`
}

type CastVoteResponse struct {
	ElectionID  int64  `json:"election_id"`
	CandidateID int64  `json:"candidate_id"`
	Message     string `json:"message"`
}

type TransitionResponse struct {
	ElectionID int64  `json:"election_id"`
	Status     string `json:"status"`
	Message    string `json:"message"`
}

// Domain types

type Candidate struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Party string `json:"party,omitempty"`
	Votes int64  `json:"votes"`
}

type Voter struct {
	Address  string `json:"address"`
	HasVoted bool   `json:"has_voted"`
}

type Election struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	StartTime   int64       `json:"start_time"` // epoch milliseconds
	EndTime     int64       `json:"end_time"`   // epoch milliseconds
	Status      string      `json:"status"`
	Candidates  []Candidate `json:"candidates"`
	Voters      []Voter     `json:"voters"`
	CreatedBy   string      `json:"created_by"`
	Version     int64       `json:"version"`
}

// Clone returns a deep copy so callers can't reach back into registry state.
func (e *Election) Clone() Election {
	out := *e
	out.Candidates = make([]Candidate, len(e.Candidates))
	copy(out.Candidates, e.Candidates)
	out.Voters = make([]Voter, len(e.Voters))
	copy(out.Voters, e.Voters)
	return out
}

// Voter returns the voter entry for addr, or nil if none exists.
func (e *Election) Voter(addr string) *Voter {
	for i := range e.Voters {
		if e.Voters[i].Address == addr {
			return &e.Voters[i]
		}
	}
	return nil
}

// Candidate returns the candidate with the given id, or nil if none exists.
func (e *Election) Candidate(id int64) *Candidate {
	for i := range e.Candidates {
		if e.Candidates[i].ID == id {
			return &e.Candidates[i]
		}
	}
	return nil
}

// Result types

type CandidateResult struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Party      string  `json:"party,omitempty"`
	Votes      int64   `json:"votes"`
	Percentage float64 `json:"percentage"`
}

type ElectionResult struct {
	ElectionID int64             `json:"election_id"`
	Title      string            `json:"title"`
	Status     string            `json:"status"`
	TotalVotes int64             `json:"total_votes"`
	Candidates []CandidateResult `json:"candidates"`
	Winner     *CandidateResult  `json:"winner,omitempty"`
	Timing     string            `json:"timing"`
}

type ElectionSummary struct {
	ElectionID int64  `json:"election_id"`
	Title      string `json:"title"`
	Status     string `json:"status"`
	TotalVotes int64  `json:"total_votes"`
	Timing     string `json:"timing"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
