package config

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"go.hackfix.me/dashfeed/xtime"
)

// Config represents the application configuration, backed by a filesystem for
// persistence.
type Config struct {
	Auth   Auth
	Server Server

	fs   vfs.FileSystem
	path string
}

// NewConfig creates a new Config instance with the specified filesystem
// and configuration file path.
func NewConfig(fs vfs.FileSystem, path string) *Config {
	return &Config{fs: fs, path: path}
}

// Load reads and parses the configuration file from the filesystem.
// If the file doesn't exist, it initializes with an empty configuration.
func (c *Config) Load() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}

	configJSON, err := vfs.ReadFile(c.fs, c.path)
	if err != nil && !vfs.IsErrNotExist(err) {
		return fmt.Errorf("failed reading configuration file: %w", err)
	}

	// Ensure that unmarshalling JSON doesn't fail if the file doesn't exist or is empty.
	if len(configJSON) == 0 {
		configJSON = []byte("{}")
	}

	if err = json.Unmarshal(configJSON, c); err != nil {
		return fmt.Errorf("failed parsing configuration file: %w", err)
	}

	return nil
}

// Path returns the filesystem path where the configuration is stored.
func (c *Config) Path() string {
	return c.path
}

// Save writes the current configuration to the filesystem as JSON.
func (c *Config) Save() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed serializing configuration data: %w", err)
	}
	if err = vfs.WriteFile(c.fs, c.path, configJSON, 0o644); err != nil {
		return fmt.Errorf("failed writing configuration file: %w", err)
	}

	return nil
}

// Auth defines authorization options for the widget endpoints.
type Auth struct {
	// APIKey is the key dashboard clients must submit as the username of a
	// Basic Authorization credential. If unset, requests are not authenticated.
	APIKey sql.Null[string] `json:"api_key"`
}

// Server defines configuration options specific to the HTTP server.
type Server struct {
	// Address is the network address in [host]:port format the server will listen on.
	Address sql.Null[string] `json:"address"`
	// TLSCertFile and TLSKeyFile are paths to a PEM-encoded certificate and
	// private key pair. If both are set, the server will also accept TLS
	// connections on the listen port.
	TLSCertFile sql.Null[string] `json:"tls_cert_file"`
	TLSKeyFile  sql.Null[string] `json:"tls_key_file"`
	// ReadTimeout is the maximum duration for reading the entire request.
	// It serializes from/to xtime.Duration string values.
	ReadTimeout sql.Null[time.Duration] `json:"read_timeout"`
	// WriteTimeout is the maximum duration before timing out response writes.
	// It serializes from/to xtime.Duration string values.
	WriteTimeout sql.Null[time.Duration] `json:"write_timeout"`
}

type cfgWrapper struct {
	Auth   authCfgWrapper `json:"auth"`
	Server srvCfgWrapper  `json:"server"`
}
type authCfgWrapper struct {
	APIKey string `json:"api_key,omitempty"`
}
type srvCfgWrapper struct {
	Address      string `json:"address,omitempty"`
	TLSCertFile  string `json:"tls_cert_file,omitempty"`
	TLSKeyFile   string `json:"tls_key_file,omitempty"`
	ReadTimeout  string `json:"read_timeout,omitempty"`
	WriteTimeout string `json:"write_timeout,omitempty"`
}

// MarshalJSON implements custom JSON marshaling to convert sql.Null values
// to their underlying types, omitting invalid/null fields from the output.
func (c Config) MarshalJSON() ([]byte, error) {
	w := cfgWrapper{}

	if c.Auth.APIKey.Valid {
		w.Auth.APIKey = c.Auth.APIKey.V
	}

	if c.Server.Address.Valid {
		w.Server.Address = c.Server.Address.V
	}
	if c.Server.TLSCertFile.Valid {
		w.Server.TLSCertFile = c.Server.TLSCertFile.V
	}
	if c.Server.TLSKeyFile.Valid {
		w.Server.TLSKeyFile = c.Server.TLSKeyFile.V
	}
	if c.Server.ReadTimeout.Valid {
		w.Server.ReadTimeout = xtime.FormatDuration(c.Server.ReadTimeout.V, time.Second)
	}
	if c.Server.WriteTimeout.Valid {
		w.Server.WriteTimeout = xtime.FormatDuration(c.Server.WriteTimeout.V, time.Second)
	}

	//nolint:wrapcheck // This is fine.
	return json.Marshal(w)
}

// UnmarshalJSON implements custom JSON unmarshaling to convert plain values
// into sql.Null types and parse duration strings into time.Duration values.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w cfgWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	if w.Auth.APIKey != "" {
		c.Auth.APIKey = sql.Null[string]{V: w.Auth.APIKey, Valid: true}
	}

	if w.Server.Address != "" {
		c.Server.Address = sql.Null[string]{V: w.Server.Address, Valid: true}
	}
	if w.Server.TLSCertFile != "" {
		c.Server.TLSCertFile = sql.Null[string]{V: w.Server.TLSCertFile, Valid: true}
	}
	if w.Server.TLSKeyFile != "" {
		c.Server.TLSKeyFile = sql.Null[string]{V: w.Server.TLSKeyFile, Valid: true}
	}
	if w.Server.ReadTimeout != "" {
		dur, err := xtime.ParseDuration(w.Server.ReadTimeout)
		if err != nil {
			return fmt.Errorf("failed parsing server read timeout: %w", err)
		}
		c.Server.ReadTimeout = sql.Null[time.Duration]{V: dur, Valid: true}
	}
	if w.Server.WriteTimeout != "" {
		dur, err := xtime.ParseDuration(w.Server.WriteTimeout)
		if err != nil {
			return fmt.Errorf("failed parsing server write timeout: %w", err)
		}
		c.Server.WriteTimeout = sql.Null[time.Duration]{V: dur, Valid: true}
	}

	return nil
}

// SetDefaults sets default configuration values if they weren't set already.
func (c *Config) SetDefaults() {
	if !c.Server.Address.Valid {
		c.Server.Address = sql.Null[string]{V: ":8440", Valid: true}
	}
	if !c.Server.ReadTimeout.Valid {
		c.Server.ReadTimeout = sql.Null[time.Duration]{V: 30 * time.Second, Valid: true}
	}
	if !c.Server.WriteTimeout.Valid {
		c.Server.WriteTimeout = sql.Null[time.Duration]{V: time.Minute, Valid: true}
	}
}
