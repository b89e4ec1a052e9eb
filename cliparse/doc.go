// Copyright (c) 2025 VoteVerse.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration from CLI flags and environment
variables, with a .env file loaded via godotenv.

Settings:

  - PORT (-p): server port (default 8080)
  - ADMIN_USERNAME (--admin-user): admin login name (default Admin)
  - ADMIN_PASSWORD (--admin-pass): admin login password (default 12345)
  - --session-ttl: admin session lifetime (default 24h)
  - --tick: election status check interval (default 10s)
  - --no-delay: disable the simulated consensus delays
  - --seed: seed the two demo elections (default true)

CLI flags take precedence over environment variables.
*/
package cliparse
