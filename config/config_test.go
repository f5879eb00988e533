package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/unbclub/unb-go/unb"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UNB_TOKEN", "")
	t.Setenv("UNB_BASE_URL", "")
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
default_profile = "main"

[profiles.main]
token = "file-token"

[profiles.staging]
token = "staging-token"
base_url = "https://staging.example.com/api/v1"
`)

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, "file-token", cfg.Token)
	require.Equal(t, unb.DefaultBaseURL, cfg.BaseURL)
}

func TestLoadSelectsProfile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
default_profile = "main"

[profiles.main]
token = "file-token"

[profiles.staging]
token = "staging-token"
base_url = "https://staging.example.com/api/v1"
`)

	cfg, err := Load(LoadOptions{Path: path, Profile: "staging"})
	require.NoError(t, err)
	require.Equal(t, "staging-token", cfg.Token)
	require.Equal(t, "https://staging.example.com/api/v1", cfg.BaseURL)
}

func TestLoadUnknownProfile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
[profiles.main]
token = "file-token"
`)

	_, err := Load(LoadOptions{Path: path, Profile: "nope"})
	require.Error(t, err)
	require.Contains(t, err.Error(), `profile "nope" not found`)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
default_profile = "main"

[profiles.main]
token = "file-token"
`)

	t.Setenv("UNB_TOKEN", "env-token")
	t.Setenv("UNB_BASE_URL", "https://env.example.com/api/v1")

	cfg, err := Load(LoadOptions{Path: path})
	require.NoError(t, err)
	require.Equal(t, "env-token", cfg.Token)
	require.Equal(t, "https://env.example.com/api/v1", cfg.BaseURL)
}

func TestLoadFlagBeatsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("UNB_TOKEN", "env-token")

	cfg, err := Load(LoadOptions{
		Token:   "flag-token",
		BaseURL: "https://flag.example.com/api/v1",
		Path:    filepath.Join(t.TempDir(), "absent.toml"),
	})
	require.NoError(t, err)
	require.Equal(t, "flag-token", cfg.Token)
	require.Equal(t, "https://flag.example.com/api/v1", cfg.BaseURL)
}

func TestLoadWithoutToken(t *testing.T) {
	clearEnv(t)

	_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "absent.toml")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no token configured")
}

func TestLoadBadFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `this is not toml = [`)

	_, err := Load(LoadOptions{Path: path})
	require.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	require.Contains(t, path, filepath.Join("unb", "config.toml"))
}
