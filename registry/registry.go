// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Soumyadipgithub/voteverse-eth/models"
)

var (
	ErrWalletRequired      = errors.New("wallet connection required")
	ErrElectionNotFound    = errors.New("election not found")
	ErrElectionNotActive   = errors.New("election is not active")
	ErrElectionEnded       = errors.New("election has already ended")
	ErrElectionNotPending  = errors.New("election is not pending")
	ErrAlreadyVoted        = errors.New("voter has already voted")
	ErrCandidateNotFound   = errors.New("candidate not found")
	ErrVoterRegistered     = errors.New("voter already registered")
	ErrMissingFields       = errors.New("missing required fields")
	ErrInvalidTimeRange    = errors.New("end time must be after start time")
	ErrNotEnoughCandidates = errors.New("at least two candidates required")
	ErrCandidateName       = errors.New("candidate name required")
)

// Options configures a Registry. Zero-value delays commit immediately,
// which is what the tests want.
type Options struct {
	CreateDelay  time.Duration // simulated consensus round-trip for CreateElection
	ActionDelay  time.Duration // simulated round-trip for every other mutation
	TickInterval time.Duration // status watcher period (default 10s)
	SeedDemo     bool          // load the two demo elections
	Now          func() time.Time
}

// Registry owns the in-memory election collection and is the only place
// elections are mutated. Every mutation validates against the latest state,
// waits the simulated consensus delay, then re-reads and re-validates under
// the lock before committing, so two in-flight operations can never clobber
// each other's writes.
type Registry struct {
	mu        sync.RWMutex
	elections []*models.Election // creation order
	nextID    int64

	createDelay  time.Duration
	actionDelay  time.Duration
	tickInterval time.Duration
	now          func() time.Time
}

// New creates a Registry. State lives entirely in memory; a restart resets
// it to the seed data.
func New(opts Options) *Registry {
	r := &Registry{
		nextID:       1,
		createDelay:  opts.CreateDelay,
		actionDelay:  opts.ActionDelay,
		tickInterval: opts.TickInterval,
		now:          opts.Now,
	}
	if r.tickInterval <= 0 {
		r.tickInterval = 10 * time.Second
	}
	if r.now == nil {
		r.now = time.Now
	}
	if opts.SeedDemo {
		r.seedDemo()
	}
	return r
}

// Elections returns a snapshot of all elections in creation order.
func (r *Registry) Elections() []models.Election {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Election, 0, len(r.elections))
	for _, e := range r.elections {
		out = append(out, e.Clone())
	}
	return out
}

// Election returns a snapshot of one election.
func (r *Registry) Election(id int64) (models.Election, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.find(id)
	if e == nil {
		return models.Election{}, ErrElectionNotFound
	}
	return e.Clone(), nil
}

// CreateElection validates the request, waits the simulated consensus delay,
// and appends a new pending election owned by account.
func (r *Registry) CreateElection(ctx context.Context, account string, req models.CreateElectionRequest) (models.Election, error) {
	if account == "" {
		return models.Election{}, ErrWalletRequired
	}
	candidates, err := validateCreate(req)
	if err != nil {
		return models.Election{}, err
	}

	if err := r.wait(ctx, r.createDelay); err != nil {
		return models.Election{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := &models.Election{
		ID:          r.nextID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Status:      models.StatusPending,
		Candidates:  candidates,
		Voters:      []models.Voter{},
		CreatedBy:   account,
		Version:     1,
	}
	r.nextID++
	r.elections = append(r.elections, e)

	slog.Info("election created", "election_id", e.ID, "title", e.Title, "created_by", account)
	return e.Clone(), nil
}

func validateCreate(req models.CreateElectionRequest) ([]models.Candidate, error) {
	if req.Title == "" || req.Description == "" || req.StartTime == 0 || req.EndTime == 0 {
		return nil, ErrMissingFields
	}
	if req.EndTime <= req.StartTime {
		return nil, ErrInvalidTimeRange
	}

	// Blank candidate rows are dropped, not rejected.
	candidates := make([]models.Candidate, 0, len(req.Candidates))
	for _, c := range req.Candidates {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		candidates = append(candidates, models.Candidate{
			ID:    int64(len(candidates) + 1),
			Name:  name,
			Party: c.Party,
			Votes: 0,
		})
	}
	if len(candidates) < 2 {
		return nil, ErrNotEnoughCandidates
	}
	return candidates, nil
}

// StartElection moves an election to active. Calling it on an already
// active election succeeds without effect; an ended election is rejected.
func (r *Registry) StartElection(ctx context.Context, account string, id int64) (models.Election, error) {
	return r.transitionTo(ctx, account, id, models.StatusActive)
}

// EndElection moves an election to ended. Idempotent once ended.
func (r *Registry) EndElection(ctx context.Context, account string, id int64) (models.Election, error) {
	return r.transitionTo(ctx, account, id, models.StatusEnded)
}

func (r *Registry) transitionTo(ctx context.Context, account string, id int64, status string) (models.Election, error) {
	if account == "" {
		return models.Election{}, ErrWalletRequired
	}
	if err := r.checkTransition(id, status); err != nil {
		return models.Election{}, err
	}

	if err := r.wait(ctx, r.actionDelay); err != nil {
		return models.Election{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(id)
	if e == nil {
		return models.Election{}, ErrElectionNotFound
	}
	changed, err := transition(e, status)
	if err != nil {
		return models.Election{}, err
	}
	if changed {
		e.Version++
		slog.Info("election status changed", "election_id", e.ID, "status", e.Status, "by", account)
	}
	return e.Clone(), nil
}

// checkTransition is the fail-fast validation before the simulated delay.
func (r *Registry) checkTransition(id int64, status string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.find(id)
	if e == nil {
		return ErrElectionNotFound
	}
	clone := e.Clone()
	_, err := transition(&clone, status)
	return err
}

// CastVote records one vote for the named candidate by account. The voter
// entry is upserted with has_voted=true even when the account was never
// pre-registered through AddVoter.
func (r *Registry) CastVote(ctx context.Context, account string, electionID, candidateID int64) (models.Election, error) {
	if account == "" {
		return models.Election{}, ErrWalletRequired
	}
	if err := r.checkVote(account, electionID, candidateID); err != nil {
		return models.Election{}, err
	}

	if err := r.wait(ctx, r.actionDelay); err != nil {
		return models.Election{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(electionID)
	if err := validateVote(e, account, candidateID); err != nil {
		return models.Election{}, err
	}
	e.Candidate(candidateID).Votes++
	if v := e.Voter(account); v != nil {
		v.HasVoted = true
	} else {
		e.Voters = append(e.Voters, models.Voter{Address: account, HasVoted: true})
	}
	e.Version++

	slog.Info("vote cast", "election_id", electionID, "candidate_id", candidateID)
	return e.Clone(), nil
}

func (r *Registry) checkVote(account string, electionID, candidateID int64) error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return validateVote(r.find(electionID), account, candidateID)
}

func validateVote(e *models.Election, account string, candidateID int64) error {
	if e == nil {
		return ErrElectionNotFound
	}
	if e.Status != models.StatusActive {
		return ErrElectionNotActive
	}
	if v := e.Voter(account); v != nil && v.HasVoted {
		return ErrAlreadyVoted
	}
	if e.Candidate(candidateID) == nil {
		return ErrCandidateNotFound
	}
	return nil
}

// AddCandidate appends a candidate to a pending election. The new id is
// max(existing)+1 so ids stay unique even though candidates are never removed.
func (r *Registry) AddCandidate(ctx context.Context, account string, electionID int64, req models.AddCandidateRequest) (models.Candidate, error) {
	if account == "" {
		return models.Candidate{}, ErrWalletRequired
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Candidate{}, ErrCandidateName
	}
	if err := r.checkPending(electionID); err != nil {
		return models.Candidate{}, err
	}

	if err := r.wait(ctx, r.actionDelay); err != nil {
		return models.Candidate{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(electionID)
	if e == nil {
		return models.Candidate{}, ErrElectionNotFound
	}
	if e.Status != models.StatusPending {
		return models.Candidate{}, ErrElectionNotPending
	}
	var maxID int64
	for _, c := range e.Candidates {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	c := models.Candidate{ID: maxID + 1, Name: name, Party: req.Party, Votes: 0}
	e.Candidates = append(e.Candidates, c)
	e.Version++

	slog.Info("candidate added", "election_id", electionID, "candidate_id", c.ID, "name", c.Name)
	return c, nil
}

func (r *Registry) checkPending(electionID int64) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.find(electionID)
	if e == nil {
		return ErrElectionNotFound
	}
	if e.Status != models.StatusPending {
		return ErrElectionNotPending
	}
	return nil
}

// AddVoter pre-registers an address with has_voted=false. Registration is
// informational: CastVote does not require it.
func (r *Registry) AddVoter(ctx context.Context, account string, electionID int64, address string) (models.Voter, error) {
	if account == "" {
		return models.Voter{}, ErrWalletRequired
	}
	if err := r.checkVoter(electionID, address); err != nil {
		return models.Voter{}, err
	}

	if err := r.wait(ctx, r.actionDelay); err != nil {
		return models.Voter{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.find(electionID)
	if e == nil {
		return models.Voter{}, ErrElectionNotFound
	}
	if e.Voter(address) != nil {
		return models.Voter{}, ErrVoterRegistered
	}
	v := models.Voter{Address: address, HasVoted: false}
	e.Voters = append(e.Voters, v)
	e.Version++

	slog.Info("voter registered", "election_id", electionID, "address", address)
	return v, nil
}

func (r *Registry) checkVoter(electionID int64, address string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e := r.find(electionID)
	if e == nil {
		return ErrElectionNotFound
	}
	if e.Voter(address) != nil {
		return ErrVoterRegistered
	}
	return nil
}

// find must be called with r.mu held.
func (r *Registry) find(id int64) *models.Election {
	for _, e := range r.elections {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// wait simulates the consensus round-trip. A cancelled context aborts the
// operation before anything is committed.
func (r *Registry) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func statusRank(status string) int {
	switch status {
	case models.StatusPending:
		return 0
	case models.StatusActive:
		return 1
	default:
		return 2
	}
}

// transition is the single authoritative status change, used by both admin
// actions and the watcher tick. Statuses only move forward: a no-op at the
// target status, an error for anything backward.
func transition(e *models.Election, to string) (changed bool, err error) {
	cur, next := statusRank(e.Status), statusRank(to)
	switch {
	case cur == next:
		return false, nil
	case next < cur:
		if e.Status == models.StatusEnded {
			return false, ErrElectionEnded
		}
		return false, ErrElectionNotPending
	default:
		e.Status = to
		return true, nil
	}
}
