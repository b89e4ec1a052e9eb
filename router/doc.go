// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table using Go 1.22+ method routing.

Routes mirror the original app's navigation surface: /admin for the election
lifecycle, /voter for casting votes, /results for public tallies. Every
handler is wrapped with request logging.
*/
package router
