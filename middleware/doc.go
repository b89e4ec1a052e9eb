// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and request/response helpers.

  - WithLogging: request start/completion logging via slog
  - CORS: cross-origin headers for the frontend
  - JSONResponse / ErrorResponse: JSON writers
  - ParseJSONBody: request body decoding
  - WalletAddress: connected-account extraction from X-Wallet-Address
  - GetClientIP: client IP behind proxies
*/
package middleware
