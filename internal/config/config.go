package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Content sources understood by Load.
const (
	SourceStatic = "static"
	SourceSQLite = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Addr             string
	Mode             string
	ContentSource    string
	DatabasePath     string
	DeriveCategories bool
	TrustedProxies   []string
}

// Load reads configuration from the environment. Values from a .env file are
// already present when main blank-imports godotenv/autoload.
func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
	}

	source := strings.ToLower(os.Getenv("CONTENT_SOURCE"))
	if source == "" {
		source = SourceStatic
	}
	if source != SourceStatic && source != SourceSQLite {
		return nil, fmt.Errorf("invalid CONTENT_SOURCE %q: want %q or %q", source, SourceStatic, SourceSQLite)
	}

	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "data/portfolio.db"
	}

	derive := false
	if v := os.Getenv("DERIVE_CATEGORIES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DERIVE_CATEGORIES %q: %w", v, err)
		}
		derive = b
	}

	mode := os.Getenv("GIN_MODE")
	switch mode {
	case "", "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", mode)
	}

	var proxies []string
	for _, p := range strings.Split(os.Getenv("TRUSTED_PROXIES"), ",") {
		if p = strings.TrimSpace(p); p != "" {
			proxies = append(proxies, p)
		}
	}

	return &Config{
		Addr:             ":" + port,
		Mode:             mode,
		ContentSource:    source,
		DatabasePath:     dbPath,
		DeriveCategories: derive,
		TrustedProxies:   proxies,
	}, nil
}
