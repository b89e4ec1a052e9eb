// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Soumyadipgithub/voteverse-eth/cliparse"
	"github.com/Soumyadipgithub/voteverse-eth/middleware"
	"github.com/Soumyadipgithub/voteverse-eth/models"
	"github.com/Soumyadipgithub/voteverse-eth/registry"
)

type ResultsHandler struct {
	reg *registry.Registry
	cfg cliparse.Config
}

func NewResultsHandler(reg *registry.Registry, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{reg: reg, cfg: cfg}
}

// ListResults handles GET /results
// Results are public: no wallet required to read them.
func (h *ResultsHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	elections := h.reg.Elections()
	summaries := make([]models.ElectionSummary, 0, len(elections))
	for _, e := range elections {
		summaries = append(summaries, models.ElectionSummary{
			ElectionID: e.ID,
			Title:      e.Title,
			Status:     e.Status,
			TotalVotes: totalVotes(e),
			Timing:     timing(e),
		})
	}

	middleware.JSONResponse(w, http.StatusOK, summaries)
}

// GetResults handles GET /results/:id
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	id, ok := electionID(w, r)
	if !ok {
		return
	}

	election, err := h.reg.Election(id)
	if err != nil {
		writeRegistryError(w, r, err, "Failed to load results")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, buildResult(election))
}

func buildResult(e models.Election) models.ElectionResult {
	total := totalVotes(e)

	candidates := make([]models.CandidateResult, 0, len(e.Candidates))
	for _, c := range e.Candidates {
		cr := models.CandidateResult{
			ID:    c.ID,
			Name:  c.Name,
			Party: c.Party,
			Votes: c.Votes,
		}
		if total > 0 {
			cr.Percentage = float64(c.Votes) / float64(total) * 100
		}
		candidates = append(candidates, cr)
	}

	result := models.ElectionResult{
		ElectionID: e.ID,
		Title:      e.Title,
		Status:     e.Status,
		TotalVotes: total,
		Candidates: candidates,
		Timing:     timing(e),
	}

	// A winner is only declared once the election has ended, and only when
	// the lead is unambiguous.
	if e.Status == models.StatusEnded && total > 0 {
		top, tied := 0, false
		for i := 1; i < len(candidates); i++ {
			switch {
			case candidates[i].Votes > candidates[top].Votes:
				top, tied = i, false
			case candidates[i].Votes == candidates[top].Votes:
				tied = true
			}
		}
		if !tied {
			winner := candidates[top]
			result.Winner = &winner
		}
	}

	return result
}

func totalVotes(e models.Election) int64 {
	var total int64
	for _, c := range e.Candidates {
		total += c.Votes
	}
	return total
}

// timing renders the election window relative to now, e.g. "ends in 1 day"
// or "ended 2 days ago".
func timing(e models.Election) string {
	start := time.UnixMilli(e.StartTime)
	end := time.UnixMilli(e.EndTime)

	switch e.Status {
	case models.StatusPending:
		return "starts " + humanize.Time(start)
	case models.StatusActive:
		return "ends " + humanize.Time(end)
	default:
		return "ended " + humanize.Time(end)
	}
}
