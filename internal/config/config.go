package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Relay   RelayConfig   `yaml:"relay"`
	Log     LogConfig     `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
	FrontendURL     string        `yaml:"frontend_url"     env:"FRONTEND_URL"            env-default:"http://localhost:4321"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"10s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"5s"`
	SubmitPerMinute int           `yaml:"submit_per_minute" env:"SUBMIT_RATE_LIMIT"      env-default:"10"`
}

// Storage drivers.
const (
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// StorageConfig selects where the contact snapshot is kept.
type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"file"`
	// Dir is the base directory for the file driver.
	Dir string `yaml:"dir" env:"STORAGE_DIR" env-default:"./data"`
	// Path is the database file for the sqlite driver.
	Path string `yaml:"path" env:"STORAGE_PATH" env-default:"./data/contacts.db"`
	// DatabaseURL is the DSN for the postgres driver.
	DatabaseURL string `yaml:"database_url" env:"DATABASE_URL"`
	Slot        string `yaml:"slot" env:"STORAGE_SLOT" env-default:"contacts"`
}

// Relay modes.
const (
	// RelayRedirect sends the browser on to the relay with a 307 so it posts the form itself.
	RelayRedirect = "redirect"
	// RelayProxy posts the form to the relay from the server.
	RelayProxy = "proxy"
	// RelayOff stores submissions without forwarding them.
	RelayOff = "off"
)

// RelayConfig configures forwarding of new submissions.
type RelayConfig struct {
	Endpoint string        `yaml:"endpoint" env:"RELAY_ENDPOINT"`
	Mode     string        `yaml:"mode"     env:"RELAY_MODE"    env-default:"redirect"`
	Subject  string        `yaml:"subject"  env:"RELAY_SUBJECT" env-default:"New portfolio message"`
	Timeout  time.Duration `yaml:"timeout"  env:"RELAY_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
