package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSaveAndLoad(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	cfg := CLIConfig{ServerURL: "http://myhost:9090"}
	require.NoError(t, saveConfig(cfg))

	_, err := os.Stat(filepath.Join(tmp, ".config", "ct", "config.yaml"))
	require.NoError(t, err)

	loaded, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigLoadMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.ServerURL)
}

func TestConfigLoadInvalid(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)

	dir := filepath.Join(tmp, ".config", "ct")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("server_url: [oops"), 0o600))

	_, err := loadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestGetServerURL(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		saved string
		want  string
	}{
		{name: "env wins", env: "http://custom:1234", saved: "http://saved:1", want: "http://custom:1234"},
		{name: "config file", saved: "http://saved:1", want: "http://saved:1"},
		{name: "default", want: "http://localhost:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			t.Setenv("CT_SERVER_URL", tt.env)
			if tt.saved != "" {
				require.NoError(t, saveConfig(CLIConfig{ServerURL: tt.saved}))
			}

			assert.Equal(t, tt.want, getServerURL())
		})
	}
}

func TestConfigCommands(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CT_SERVER_URL", "")

	out, err := executeCommand("config", "set-server", "http://example.test:8080")
	require.NoError(t, err)
	assert.Contains(t, out, "Server URL set to http://example.test:8080")

	out, err = executeCommand("config", "show", "--format", "json")
	require.NoError(t, err)

	var shown map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &shown))
	assert.Equal(t, "http://example.test:8080", shown["server_url"])
	assert.Contains(t, shown["config_file"], filepath.Join(".config", "ct", "config.yaml"))
}
