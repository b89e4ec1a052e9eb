package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	AdminUsername string
	AdminPassword string
	SessionTTL    time.Duration
	TickInterval  time.Duration
	CreateDelay   time.Duration
	ActionDelay   time.Duration
	LoginDelay    time.Duration
	SeedDemo      bool
}

// Defaults mirror the demo this service reimplements: Admin/12345
// credentials, a 10s status check, and simulated consensus delays.
const (
	DefaultPort         = 8080
	DefaultSessionTTL   = 24 * time.Hour
	DefaultTickInterval = 10 * time.Second
	DefaultCreateDelay  = 1500 * time.Millisecond
	DefaultActionDelay  = 1000 * time.Millisecond
	DefaultLoginDelay   = 800 * time.Millisecond
)

// ParseFlags validates flags with environment variable fallback.
// A .env file in the working directory is loaded first; real environment
// variables win over it.
func ParseFlags(args []string) (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	var noDelay bool

	fs := flag.NewFlagSet("voteverse", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.AdminUsername, "admin-user", "", "Admin username (prefer env)")
	fs.StringVar(&cfg.AdminPassword, "admin-pass", "", "Admin password (prefer env)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", DefaultSessionTTL, "Admin session lifetime")
	fs.DurationVar(&cfg.TickInterval, "tick", DefaultTickInterval, "Election status check interval")
	fs.BoolVar(&noDelay, "no-delay", false, "Disable simulated consensus delays")
	fs.BoolVar(&cfg.SeedDemo, "seed", true, "Seed the two demo elections")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = os.Getenv("ADMIN_USERNAME")
	}
	if cfg.AdminUsername == "" {
		cfg.AdminUsername = "Admin"
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = os.Getenv("ADMIN_PASSWORD")
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "12345"
	}

	if !noDelay {
		cfg.CreateDelay = DefaultCreateDelay
		cfg.ActionDelay = DefaultActionDelay
		cfg.LoginDelay = DefaultLoginDelay
	}

	return cfg, nil
}
