// Package config provides configuration management for the devreg CLI.
package config

// ServerConfig holds configuration for the inspector server.
type ServerConfig struct {
	Port  int  `koanf:"port"`
	Watch bool `koanf:"watch"`
}

// Config holds all CLI configuration options.
type Config struct {
	// CatalogsFile is the YAML catalog file. Empty means the built-in landing catalogs.
	CatalogsFile string        `koanf:"catalogs_file"`
	StatePath    string        `koanf:"state_path"`
	Verbose      bool          `koanf:"verbose"`
	LogLevel     string        `koanf:"log_level"`
	OutputFormat string        `koanf:"output"`
	Server       *ServerConfig `koanf:"server"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// GetServerConfig returns the server config with defaults applied for any unset values.
func (c *Config) GetServerConfig() *ServerConfig {
	if c.Server == nil {
		return &ServerConfig{Port: DefaultPort}
	}
	srv := *c.Server
	if srv.Port == 0 {
		srv.Port = DefaultPort
	}
	return &srv
}

// Default configuration values.
const (
	DefaultConfigFile  = "devreg.yaml"
	DefaultCatalogFile = "registry.yaml"
	DefaultStateFile   = ".devreg/state.db"
	DefaultLogLevel    = "warn"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultPort        = 8787
)
