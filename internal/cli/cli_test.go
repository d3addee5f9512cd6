package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/showroom/internal/app"
	"github.com/five82/showroom/internal/prefs"
)

func testConfig(t *testing.T, endpoint string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	snapshot := filepath.Join(dir, "country.toml")
	content := fmt.Sprintf("geo_endpoint = %q\ncountry_file = %q\nprefs_file = %q\nlog_file = %q\n",
		endpoint, snapshot, filepath.Join(dir, "prefs.toml"), filepath.Join(dir, "showroom.log"))
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path, snapshot
}

func geoServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, opts *rootOptions, args ...string) (string, error) {
	t.Helper()
	if opts == nil {
		opts = &rootOptions{isTerminal: func() bool { return false }, runTUI: app.Run}
	}
	cmd := newRootCmd(opts, "test")
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRoot_RefusesWithoutTerminal(t *testing.T) {
	called := false
	opts := &rootOptions{
		isTerminal: func() bool { return false },
		runTUI:     func(context.Context, app.Options) error { called = true; return nil },
	}

	_, err := execute(t, opts)
	assert.ErrorIs(t, err, ErrNoTerminal)
	assert.False(t, called)
}

func TestRoot_RunsTUIWithFlags(t *testing.T) {
	var got app.Options
	opts := &rootOptions{
		isTerminal: func() bool { return true },
		runTUI: func(_ context.Context, o app.Options) error {
			got = o
			return nil
		},
	}

	_, err := execute(t, opts, "--config", "/tmp/showroom.toml", "--debug", "--section", "models")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/showroom.toml", got.ConfigPath)
	assert.True(t, got.Debug)
	assert.Equal(t, "models", got.Section)
}

func TestDetect_SupportedCountry(t *testing.T) {
	srv := geoServer(t, http.StatusOK, `{"ip":"1.2.3.4","country":"PA"}`)
	cfg, snapshot := testConfig(t, srv.URL)

	out, err := execute(t, nil, "--config", cfg, "detect", "--confirm")
	require.NoError(t, err)
	assert.Contains(t, out, "Detected")
	assert.Contains(t, out, "Panamá")
	assert.Contains(t, out, "Confirmed for")

	snap, found, err := prefs.CountryFile{Path: snapshot}.Load()
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, snap.Country)
	assert.Equal(t, "panama", snap.Country.Code)
	assert.True(t, snap.Confirmed)
}

func TestDetect_ServerErrorFallsBackHome(t *testing.T) {
	srv := geoServer(t, http.StatusTooManyRequests, `{"error":true,"reason":"RateLimited"}`)
	cfg, snapshot := testConfig(t, srv.URL)

	out, err := execute(t, nil, "--config", cfg, "detect")
	require.NoError(t, err)
	assert.Contains(t, out, "República Dominicana")

	snap, _, err := prefs.CountryFile{Path: snapshot}.Load()
	require.NoError(t, err)
	require.NotNil(t, snap.Country)
	assert.Equal(t, "dominican_republic", snap.Country.Code)
	assert.False(t, snap.Confirmed)
}

func TestStatusAndReset(t *testing.T) {
	srv := geoServer(t, http.StatusOK, `{"country":"EC"}`)
	cfg, _ := testConfig(t, srv.URL)

	_, err := execute(t, nil, "--config", cfg, "detect", "--confirm")
	require.NoError(t, err)

	out, err := execute(t, nil, "--config", cfg, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Ecuador")
	assert.Contains(t, out, "[+593, USD]")
	assert.Regexp(t, `Selection screen:\s+no`, out)

	out, err = execute(t, nil, "--config", cfg, "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "Selection cleared")

	out, err = execute(t, nil, "--config", cfg, "status")
	require.NoError(t, err)
	assert.Regexp(t, `Confirmed:\s+no`, out)
	assert.Regexp(t, `Selection screen:\s+yes`, out)
	assert.Contains(t, out, "Ecuador", "reset keeps the country")
}

func TestStatus_FreshInstall(t *testing.T) {
	cfg, _ := testConfig(t, "https://ipapi.co/json/")

	out, err := execute(t, nil, "--config", cfg, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "(none)")
	assert.Regexp(t, `Selection screen:\s+yes`, out)
}
