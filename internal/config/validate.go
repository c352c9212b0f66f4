package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Storage.validate(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	if err := c.Relay.validate(); err != nil {
		return fmt.Errorf("relay: %w", err)
	}
	if c.Server.SubmitPerMinute <= 0 {
		return fmt.Errorf("server.submit_per_minute must be > 0 (got %d)", c.Server.SubmitPerMinute)
	}
	return nil
}

func (s *StorageConfig) validate() error {
	s.Driver = strings.ToLower(strings.TrimSpace(s.Driver))
	switch s.Driver {
	case DriverFile:
		if s.Dir == "" {
			return fmt.Errorf("dir is required for the file driver")
		}
	case DriverSQLite:
		if s.Path == "" {
			return fmt.Errorf("path is required for the sqlite driver")
		}
	case DriverPostgres:
		if s.DatabaseURL == "" {
			return fmt.Errorf("database_url is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q", s.Driver)
	}
	if strings.TrimSpace(s.Slot) == "" {
		return fmt.Errorf("slot must not be empty")
	}
	return nil
}

func (r *RelayConfig) validate() error {
	r.Mode = strings.ToLower(strings.TrimSpace(r.Mode))
	switch r.Mode {
	case RelayOff:
		return nil
	case RelayRedirect, RelayProxy:
	default:
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	if r.Endpoint == "" {
		return fmt.Errorf("endpoint is required in %s mode", r.Mode)
	}
	u, err := url.Parse(r.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("endpoint %q must be an absolute http(s) URL", r.Endpoint)
	}
	if r.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0")
	}
	return nil
}
