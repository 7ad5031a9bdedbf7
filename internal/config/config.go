package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

const EnvPrefix = "CTI"

type Config struct {
	APIURL    string `envconfig:"API_URL"`
	WSURL     string `envconfig:"WS_URL"`
	Username  string `envconfig:"USERNAME"`
	Token     string `envconfig:"TOKEN"`
	Extension string `envconfig:"EXTENSION"`
	Region    string `envconfig:"REGION" default:"IT"`

	PageSize        int           `envconfig:"PAGE_SIZE" default:"10"`
	SearchDelay     time.Duration `envconfig:"SEARCH_DELAY" default:"400ms"`
	RefreshInterval time.Duration `envconfig:"REFRESH_INTERVAL" default:"20s"`
	RateLimit       float64       `envconfig:"RATE_LIMIT" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	LogFile  string `envconfig:"LOG_FILE"`
	// StateDir holds per-user preferences. Defaults to the user config dir.
	StateDir string `envconfig:"STATE_DIR"`
}

// Load reads an optional .env file and then the CTI_* environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}

// BindFlags registers command-line overrides on fs. Values already loaded
// from the environment become the flag defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.APIURL, "api", c.APIURL, "CTI API base URL (e.g. https://cti.example.com/api)")
	fs.StringVar(&c.WSURL, "ws", c.WSURL, "websocket URL for live events (derived from --api when empty)")
	fs.StringVarP(&c.Username, "user", "u", c.Username, "CTI username")
	fs.StringVar(&c.Token, "token", c.Token, "CTI authentication token")
	fs.StringVarP(&c.Extension, "extension", "e", c.Extension, "main extension (defaults to the one reported by the backend)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Finalize fills derived values. Call it after flags are parsed.
func (c *Config) Finalize() error {
	c.APIURL = strings.TrimRight(strings.TrimSpace(c.APIURL), "/")
	if c.WSURL == "" && c.APIURL != "" {
		ws, err := DeriveWSURL(c.APIURL)
		if err != nil {
			return err
		}
		c.WSURL = ws
	}
	if c.StateDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("resolve config dir: %w", err)
		}
		c.StateDir = filepath.Join(dir, "cti-tui")
	}
	if c.LogFile == "" {
		dir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("resolve cache dir: %w", err)
		}
		c.LogFile = filepath.Join(dir, "cti-tui", "cti-tui.log")
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	return nil
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api url is required (use --api or CTI_API_URL)")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api url must be an http(s) URL, got %q", c.APIURL)
	}
	if c.Username == "" || c.Token == "" {
		return fmt.Errorf("username and token are required (use --user/--token or CTI_USERNAME/CTI_TOKEN)")
	}
	return nil
}

// DeriveWSURL maps https://host/api to wss://host/ws.
func DeriveWSURL(apiURL string) (string, error) {
	u, err := url.Parse(apiURL)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported api url scheme %q", u.Scheme)
	}
	u.Path = "/ws"
	u.RawQuery = ""
	return u.String(), nil
}
