// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the VoteVerse API server.

VoteVerse is a demo "blockchain voting" service: an in-memory election
registry with admin and voter roles, simulated consensus delays, and no
persistence. State resets to the two seeded demo elections on restart.
There is no real ledger, no cryptography protecting ballots, and no intent
to pretend otherwise.

# Starting the Server

	go run main.go

Or with flags:

	go run main.go -p 8080 --no-delay

# Configuration

Optional settings (flags or environment, .env supported):

  - PORT (-p): server port (default 8080)
  - ADMIN_USERNAME / ADMIN_PASSWORD: admin credentials (default Admin/12345)
  - --session-ttl: admin session lifetime (default 24h)
  - --tick: election status check interval (default 10s)
  - --no-delay: disable simulated consensus delays
  - --seed: seed the two demo elections (default true)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - registry: the in-memory election collection and all mutation operations
  - handlers: HTTP request handlers (admin lifecycle, voting, results)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, wallet header extraction
  - auth: admin sessions and wallet address validation
  - models: request/response and domain types
  - cliparse: configuration parsing

Clients identify themselves with the X-Wallet-Address header (the stand-in
for a browser wallet) and, for admin routes, an X-Admin-Token session token.

See package documentation for each component.
*/
package main
