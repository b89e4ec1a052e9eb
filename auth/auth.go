// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/hmac"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

var (
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrWalletMismatch     = errors.New("session bound to a different wallet")
	ErrInvalidWallet      = errors.New("invalid wallet address")
)

// ValidWalletAddress reports whether addr looks like a hex Ethereum address.
// This is the only validation wallet addresses get, and only at the HTTP
// boundary; the registry treats the account as an opaque string.
func ValidWalletAddress(addr string) bool {
	return common.IsHexAddress(addr)
}

// Authenticate checks the submitted credentials against the configured pair
// after the simulated authentication delay.
func Authenticate(ctx context.Context, delay time.Duration, username, password, wantUser, wantPass string) error {
	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	userOK := hmac.Equal([]byte(username), []byte(wantUser))
	passOK := hmac.Equal([]byte(password), []byte(wantPass))
	if !userOK || !passOK {
		return ErrInvalidCredentials
	}
	return nil
}

// Sessions holds admin elevation tokens. Each token is bound to the wallet
// address that logged in and expires after the configured TTL.
type Sessions struct {
	store *cache.Cache
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{store: cache.New(ttl, ttl)}
}

// Issue creates a session token for the given wallet address.
func (s *Sessions) Issue(wallet string) string {
	token := uuid.NewString()
	s.store.Set(token, wallet, cache.DefaultExpiration)
	return token
}

// Verify checks that token exists and belongs to wallet. A token presented
// with a different wallet is revoked on the spot, the server-side analog of
// dropping admin elevation when the connected account changes.
func (s *Sessions) Verify(token, wallet string) error {
	v, ok := s.store.Get(token)
	if !ok {
		return ErrInvalidSession
	}
	if v.(string) != wallet {
		s.store.Delete(token)
		return ErrWalletMismatch
	}
	return nil
}

// Revoke drops a session token.
func (s *Sessions) Revoke(token string) {
	s.store.Delete(token)
}
