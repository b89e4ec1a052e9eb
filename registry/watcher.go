// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import (
	"context"
	"log/slog"
	"time"

	"github.com/Soumyadipgithub/voteverse-eth/models"
)

// Run drives the periodic status promotion until ctx is cancelled.
// Call it from a goroutine next to the HTTP server.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.tickInterval)
	defer ticker.Stop()

	slog.Info("status watcher running", "interval", r.tickInterval)
	for {
		select {
		case <-ctx.Done():
			slog.Info("status watcher stopped")
			return
		case <-ticker.C:
			r.promoteDue()
		}
	}
}

// promoteDue advances elections whose start or end time has passed. It goes
// through the same transition function and lock as the admin actions, so a
// tick and an explicit start/end serialize instead of racing. At most one
// step per election per tick, as a freshly started election should not end
// on the same pass.
func (r *Registry) promoteDue() {
	now := r.now().UnixMilli()

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.elections {
		var target string
		switch {
		case e.Status == models.StatusPending && now >= e.StartTime:
			target = models.StatusActive
		case e.Status == models.StatusActive && now >= e.EndTime:
			target = models.StatusEnded
		default:
			continue
		}
		if changed, err := transition(e, target); err == nil && changed {
			e.Version++
			slog.Info("election promoted", "election_id", e.ID, "status", e.Status)
		}
	}
}
