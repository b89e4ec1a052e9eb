// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package registry owns the in-memory election collection and every mutation
on it. Nothing here persists: a restart resets state to the demo seed.

# Lifecycle

Elections move forward only:

	pending --(start time reached OR admin start)--> active
	active  --(end time reached OR admin end)-----> ended

Both the 10-second watcher tick (Run) and the explicit admin actions funnel
through one transition function under one lock, so the two can never race a
status backward. Start/end are idempotent at their target status.

# Mutation discipline

Every operation takes the acting wallet address; an empty address fails
before anything else. Mutations then:

 1. validate against the latest state (fail fast),
 2. wait the simulated consensus round-trip (cancellable via ctx),
 3. re-read the latest state under the lock, re-validate, and commit.

Step 3 makes each mutation an atomic read-latest/apply/write transform, so
concurrent in-flight operations cannot lose updates. Committed mutations bump
the election's version.

# Voting rules

CastVote requires an active election, a known candidate, and an account that
has not voted in that election. On success it increments the candidate count
and upserts the voter entry with has_voted=true. Pre-registration through
AddVoter is informational, not required.
*/
package registry
