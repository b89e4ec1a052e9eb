// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides admin elevation and wallet address validation.

Admin login checks a configured username/password pair (default Admin/12345,
inherited from the demo) after a simulated authentication delay, then issues
a uuid session token held in a TTL cache. Tokens are bound to the wallet
address that logged in; presenting one with a different wallet revokes it.

Wallet addresses are only checked for hex-address shape, and only here;
the registry never validates them.
*/
package auth
