// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"time"

	"github.com/Soumyadipgithub/voteverse-eth/models"
)

const demoAdmin = "0x1234567890123456789012345678901234567890"

// seedDemo loads the two demo elections: one currently active, one already
// ended. Times are relative to the injected clock so the watcher behaves the
// same on every boot.
func (r *Registry) seedDemo() {
	now := r.now()
	day := 24 * time.Hour

	r.elections = append(r.elections,
		&models.Election{
			ID:          1,
			Title:       "Student Council Election",
			Description: "Vote for your student council representative",
			StartTime:   now.Add(-day).UnixMilli(),
			EndTime:     now.Add(day).UnixMilli(),
			Status:      models.StatusActive,
			Candidates: []models.Candidate{
				{ID: 1, Name: "Ravi Raj", Party: "Nihant Party"},
				{ID: 2, Name: "Rahul kumar", Party: "Future Alliance"},
				{ID: 3, Name: "Soumyadip Giri", Party: "Student Voice"},
				{ID: 4, Name: "Aman Das", Party: "Top Group"},
				{ID: 5, Name: "Sima Kumari", Party: "Baba Team"},
			},
			Voters:    []models.Voter{},
			CreatedBy: demoAdmin,
			Version:   1,
		},
		&models.Election{
			ID:          2,
			Title:       "Departmental Head Election",
			Description: "Vote for your department head",
			StartTime:   now.Add(-2 * day).UnixMilli(),
			EndTime:     now.Add(-day).UnixMilli(),
			Status:      models.StatusEnded,
			Candidates: []models.Candidate{
				{ID: 1, Name: "Frank Miller", Party: "Tech Forward", Votes: 24},
				{ID: 2, Name: "Grace Turner", Party: "Innovate Now", Votes: 18},
				{ID: 3, Name: "Henry Clark", Party: "Future Tech", Votes: 32},
			},
			Voters:    []models.Voter{},
			CreatedBy: demoAdmin,
			Version:   1,
		},
	)
	r.nextID = 3
}
