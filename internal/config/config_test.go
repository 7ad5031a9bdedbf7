package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	t.Setenv("CTI_API_URL", "https://cti.example.com/api")
	t.Setenv("CTI_USERNAME", "alice")
	t.Setenv("CTI_TOKEN", "secret")
	t.Setenv("CTI_SEARCH_DELAY", "250ms")
	t.Setenv("CTI_RATE_LIMIT", "2.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://cti.example.com/api", cfg.APIURL)
	assert.Equal(t, "alice", cfg.Username)
	assert.Equal(t, "secret", cfg.Token)
	assert.Equal(t, 250*time.Millisecond, cfg.SearchDelay)
	assert.Equal(t, 2.5, cfg.RateLimit)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 400*time.Millisecond, cfg.SearchDelay)
	assert.Equal(t, 20*time.Second, cfg.RefreshInterval)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "IT", cfg.Region)
}

func TestBindFlagsOverrideEnv(t *testing.T) {
	t.Setenv("CTI_USERNAME", "alice")
	cfg, err := Load()
	require.NoError(t, err)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.BindFlags(fs)
	require.NoError(t, fs.Parse([]string{"--api", "http://pbx.local/api/", "-u", "bob"}))
	require.NoError(t, cfg.Finalize())

	assert.Equal(t, "bob", cfg.Username)
	assert.Equal(t, "http://pbx.local/api", cfg.APIURL)
	assert.Equal(t, "ws://pbx.local/ws", cfg.WSURL)
}

func TestDeriveWSURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"https://cti.example.com/api", "wss://cti.example.com/ws", false},
		{"http://10.0.0.1:8080/api?x=1", "ws://10.0.0.1:8080/ws", false},
		{"ftp://host/api", "", true},
	}
	for _, tt := range tests {
		got, err := DeriveWSURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestValidate(t *testing.T) {
	valid := Config{APIURL: "https://cti.example.com/api", Username: "alice", Token: "t"}
	assert.NoError(t, valid.Validate())

	noURL := valid
	noURL.APIURL = ""
	assert.Error(t, noURL.Validate())

	badScheme := valid
	badScheme.APIURL = "cti.example.com"
	assert.Error(t, badScheme.Validate())

	noToken := valid
	noToken.Token = ""
	assert.Error(t, noToken.Validate())
}
