package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/unbclub/unb-go/unb"
)

// Configs is everything the CLI needs to reach the platform.
type Configs struct {
	Token   string
	BaseURL string
}

// Profile is one named credential set in the config file.
type Profile struct {
	Token   string `toml:"token"`
	BaseURL string `toml:"base_url"`
}

// File is the on-disk layout of the config file:
//
//	default_profile = "main"
//
//	[profiles.main]
//	token = "..."
//
//	[profiles.staging]
//	token = "..."
//	base_url = "https://staging.example.com/api/v1"
type File struct {
	DefaultProfile string             `toml:"default_profile"`
	Profiles       map[string]Profile `toml:"profiles"`
}

// LoadOptions carries the command line inputs that take part in
// resolution. Zero values mean "not given".
type LoadOptions struct {
	Token   string
	BaseURL string
	Profile string

	// Path overrides the config file location; the default lives under
	// the user config directory.
	Path string
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "unb", "config.toml"), nil
}

// Load resolves the CLI configuration. Flags beat environment
// variables, environment variables beat the profile file. A .env file
// in the working directory is folded into the environment first, so
// UNB_TOKEN and UNB_BASE_URL can live there.
func Load(opts LoadOptions) (Configs, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	cfg := Configs{BaseURL: unb.DefaultBaseURL}

	fileCfg, err := loadFile(opts.Path)
	if err != nil {
		return Configs{}, err
	}
	if fileCfg != nil {
		name := opts.Profile
		if name == "" {
			name = fileCfg.DefaultProfile
		}
		if name == "" {
			name = "default"
		}

		profile, ok := fileCfg.Profiles[name]
		if !ok && opts.Profile != "" {
			return Configs{}, fmt.Errorf("config: profile %q not found", opts.Profile)
		}
		if profile.Token != "" {
			cfg.Token = profile.Token
		}
		if profile.BaseURL != "" {
			cfg.BaseURL = profile.BaseURL
		}
	} else if opts.Profile != "" {
		return Configs{}, fmt.Errorf("config: profile %q requested but no config file found", opts.Profile)
	}

	if token := os.Getenv("UNB_TOKEN"); token != "" {
		cfg.Token = token
	}
	if baseURL := os.Getenv("UNB_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}

	if opts.Token != "" {
		cfg.Token = opts.Token
	}
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}

	if cfg.Token == "" {
		return Configs{}, errors.New("config: no token configured, pass --token, set UNB_TOKEN, or add a profile")
	}

	return cfg, nil
}

// loadFile reads the profile file, which is allowed to be absent.
func loadFile(path string) (*File, error) {
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, nil
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	var file File
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return &file, nil
}
