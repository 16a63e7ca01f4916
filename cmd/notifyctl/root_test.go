package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-notify-client/internal/config"
	jwtinfra "github.com/go-notify-client/internal/infrastructure/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppEnv:          "test",
		LogLevel:        "error",
		NotifyBaseURL:   "http://127.0.0.1:1",
		NotifyNamespace: "default",
		NotifyTimeout:   time.Second,
		JWTSecret:       "cli-secret",
		JWTExpiry:       time.Hour,
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	cmd := RootCommand(cfg)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPreviewList(t *testing.T) {
	out, err := run(t, testConfig(), "--preview", "list", "--user", "u1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"notifies":[]}`, out)
}

func TestPreviewUnread(t *testing.T) {
	out, err := run(t, testConfig(), "--preview", "unread")
	require.NoError(t, err)
	assert.JSONEq(t, `{"unread":0}`, out)
}

func TestSettingsSetRejectsUnknownValue(t *testing.T) {
	_, err := run(t, testConfig(), "--preview", "settings", "set", "maybe")
	assert.Error(t, err)
}

func TestDeleteNeedsIDsOrAll(t *testing.T) {
	_, err := run(t, testConfig(), "--preview", "delete")
	assert.Error(t, err)

	_, err = run(t, testConfig(), "--preview", "delete", "--all")
	assert.NoError(t, err)
}

func TestLiveCallValidatesBeforeSending(t *testing.T) {
	// no token: the gateway rejects the config without dialing
	_, err := run(t, testConfig(), "list", "--user", "u1")
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestTokenSignsForUser(t *testing.T) {
	cfg := testConfig()
	out, err := run(t, cfg, "token", "--user", "u1", "--namespace", "shop")
	require.NoError(t, err)

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &body))

	p, err := jwtinfra.NewProvider(cfg)
	require.NoError(t, err)
	claims, err := p.Verify(body["token"])
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "shop", claims.Namespace)
}
