package config

import (
	"database/sql"
	"testing"
	"time"

	"github.com/mandelsoft/vfs/pkg/memoryfs"
	"github.com/mandelsoft/vfs/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoad(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileJSON string
		expCfg   Config
		expErr   string
	}{
		{
			name: "ok/missing_file",
		},
		{
			name: "ok/full",
			fileJSON: `{
				"auth": {"api_key": "s3cret"},
				"server": {
					"address": "localhost:9000",
					"tls_cert_file": "/certs/server.crt",
					"tls_key_file": "/certs/server.key",
					"read_timeout": "45s",
					"write_timeout": "2m"
				}
			}`,
			expCfg: Config{
				Auth: Auth{
					APIKey: sql.Null[string]{V: "s3cret", Valid: true},
				},
				Server: Server{
					Address:      sql.Null[string]{V: "localhost:9000", Valid: true},
					TLSCertFile:  sql.Null[string]{V: "/certs/server.crt", Valid: true},
					TLSKeyFile:   sql.Null[string]{V: "/certs/server.key", Valid: true},
					ReadTimeout:  sql.Null[time.Duration]{V: 45 * time.Second, Valid: true},
					WriteTimeout: sql.Null[time.Duration]{V: 2 * time.Minute, Valid: true},
				},
			},
		},
		{
			name:     "ok/partial",
			fileJSON: `{"auth": {"api_key": "s3cret"}}`,
			expCfg: Config{
				Auth: Auth{
					APIKey: sql.Null[string]{V: "s3cret", Valid: true},
				},
			},
		},
		{
			name:     "ok/calendar_duration_units",
			fileJSON: `{"server": {"read_timeout": "1d"}}`,
			expCfg: Config{
				Server: Server{
					ReadTimeout: sql.Null[time.Duration]{V: 24 * time.Hour, Valid: true},
				},
			},
		},
		{
			name:     "err/invalid_duration",
			fileJSON: `{"server": {"read_timeout": "10q"}}`,
			expErr:   "failed parsing server read timeout",
		},
		{
			name:     "err/invalid_json",
			fileJSON: `{"server": `,
			expErr:   "failed parsing configuration file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := memoryfs.New()
			if tt.fileJSON != "" {
				require.NoError(t, vfs.WriteFile(fs, "/config.json", []byte(tt.fileJSON), 0o644))
			}

			cfg := NewConfig(fs, "/config.json")
			err := cfg.Load()
			if tt.expErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expCfg.Auth, cfg.Auth)
			assert.Equal(t, tt.expCfg.Server, cfg.Server)
		})
	}
}

func TestConfigSave(t *testing.T) {
	t.Parallel()

	fs := memoryfs.New()
	cfg := NewConfig(fs, "/etc/dashfeed/config.json")
	cfg.Auth.APIKey = sql.Null[string]{V: "s3cret", Valid: true}
	cfg.Server.Address = sql.Null[string]{V: ":9000", Valid: true}
	cfg.Server.ReadTimeout = sql.Null[time.Duration]{V: 30 * time.Second, Valid: true}

	require.NoError(t, cfg.Save())

	data, err := vfs.ReadFile(fs, "/etc/dashfeed/config.json")
	require.NoError(t, err)
	assert.Equal(t, `{
  "auth": {
    "api_key": "s3cret"
  },
  "server": {
    "address": ":9000",
    "read_timeout": "30s"
  }
}`, string(data))
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	fs := memoryfs.New()
	cfg := NewConfig(fs, "/config.json")
	cfg.Auth.APIKey = sql.Null[string]{V: "s3cret", Valid: true}
	cfg.Server.Address = sql.Null[string]{V: "localhost:9000", Valid: true}
	cfg.Server.TLSCertFile = sql.Null[string]{V: "/certs/server.crt", Valid: true}
	cfg.Server.TLSKeyFile = sql.Null[string]{V: "/certs/server.key", Valid: true}
	cfg.Server.ReadTimeout = sql.Null[time.Duration]{V: 24 * time.Hour, Valid: true}
	cfg.Server.WriteTimeout = sql.Null[time.Duration]{V: 90 * time.Second, Valid: true}

	require.NoError(t, cfg.Save())

	loaded := NewConfig(fs, "/config.json")
	require.NoError(t, loaded.Load())
	assert.Equal(t, cfg, loaded)
}

func TestConfigSetDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills_unset_values", func(t *testing.T) {
		t.Parallel()

		var cfg Config
		cfg.SetDefaults()
		assert.Equal(t, sql.Null[string]{V: ":8440", Valid: true}, cfg.Server.Address)
		assert.Equal(t, sql.Null[time.Duration]{V: 30 * time.Second, Valid: true}, cfg.Server.ReadTimeout)
		assert.Equal(t, sql.Null[time.Duration]{V: time.Minute, Valid: true}, cfg.Server.WriteTimeout)
		assert.False(t, cfg.Auth.APIKey.Valid)
	})

	t.Run("keeps_set_values", func(t *testing.T) {
		t.Parallel()

		var cfg Config
		cfg.Server.Address = sql.Null[string]{V: ":9000", Valid: true}
		cfg.SetDefaults()
		assert.Equal(t, sql.Null[string]{V: ":9000", Valid: true}, cfg.Server.Address)
	})
}
