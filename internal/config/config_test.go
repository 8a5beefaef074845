package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ct.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Nil(t, cfg.Log.Dev)
	assert.False(t, cfg.Log.DevMode())
	assert.Contains(t, cfg.Storage.DBPath, filepath.Join(".client-tracker", "clients.db"))
}

func TestLoadPriority(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := writeFile(t, `
server:
  address: ":9000"
  read_timeout: 5s
storage:
  db_path: /tmp/file.db
log:
  level: warn
`)

	tests := []struct {
		name      string
		env       map[string]string
		overrides *Config
		wantAddr  string
		wantDB    string
		wantLevel string
		wantDev   bool
	}{
		{
			name:      "file over defaults",
			wantAddr:  ":9000",
			wantDB:    "/tmp/file.db",
			wantLevel: "warn",
		},
		{
			name:      "env over file",
			env:       map[string]string{"CT_SERVER_ADDRESS": ":7000", "CT_LOG_DEV": "true"},
			wantAddr:  ":7000",
			wantDB:    "/tmp/file.db",
			wantLevel: "warn",
			wantDev:   true,
		},
		{
			name:      "overrides over env",
			env:       map[string]string{"CT_SERVER_ADDRESS": ":7000", "CT_STORAGE_DB_PATH": "/tmp/env.db"},
			overrides: &Config{Server: Server{Address: ":6000"}, Log: Log{Level: "debug"}},
			wantAddr:  ":6000",
			wantDB:    "/tmp/env.db",
			wantLevel: "debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(path, tt.overrides)
			require.NoError(t, err)

			assert.Equal(t, tt.wantAddr, cfg.Server.Address)
			assert.Equal(t, tt.wantDB, cfg.Storage.DBPath)
			assert.Equal(t, tt.wantLevel, cfg.Log.Level)
			assert.Equal(t, tt.wantDev, cfg.Log.DevMode())
			assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
			assert.Equal(t, 30*time.Second, cfg.Server.WriteTimeout)
		})
	}
}

func TestLoadDevFlagCanBeTurnedOff(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFile(t, "log:\n  dev: true\n")
	off := false

	tests := []struct {
		name      string
		env       map[string]string
		overrides *Config
		want      bool
	}{
		{name: "file only", want: true},
		{name: "env false", env: map[string]string{"CT_LOG_DEV": "false"}, want: false},
		{name: "override false", overrides: &Config{Log: Log{Dev: &off}}, want: false},
		{name: "unset override keeps env", env: map[string]string{"CT_LOG_DEV": "false"}, overrides: &Config{Log: Log{Level: "debug"}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(path, tt.overrides)
			require.NoError(t, err)
			require.NotNil(t, cfg.Log.Dev)
			assert.Equal(t, tt.want, cfg.Log.DevMode())
		})
	}
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading config file")
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "server: [unclosed"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config file")
	})

	t.Run("bad env duration", func(t *testing.T) {
		t.Setenv("CT_SERVER_READ_TIMEOUT", "soon")
		_, err := Load("", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing environment")
	})

	t.Run("negative timeout", func(t *testing.T) {
		_, err := Load(writeFile(t, "server:\n  write_timeout: -1s\n"), nil)
		assert.ErrorIs(t, err, ErrInvalidServerConfig)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: Server{
				Address:         ":8080",
				ReadTimeout:     time.Second,
				WriteTimeout:    time.Second,
				ShutdownTimeout: time.Second,
			},
			Storage: Storage{DBPath: "x.db"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty address", mutate: func(c *Config) { c.Server.Address = "" }, wantErr: ErrInvalidServerConfig},
		{name: "zero read timeout", mutate: func(c *Config) { c.Server.ReadTimeout = 0 }, wantErr: ErrInvalidServerConfig},
		{name: "zero shutdown timeout", mutate: func(c *Config) { c.Server.ShutdownTimeout = 0 }, wantErr: ErrInvalidServerConfig},
		{name: "empty db path", mutate: func(c *Config) { c.Storage.DBPath = "" }, wantErr: ErrInvalidStorageConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
