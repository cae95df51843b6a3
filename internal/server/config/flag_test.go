package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"invtrack"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestParseFlags_OverridesEveryField(t *testing.T) {
	withArgs(t,
		"-a", "127.0.0.1:8080", "-g", "127.0.0.1:9090",
		"-k", "sqlite", "-d", "file:inv.db",
		"-s", "secret", "-t", "90", "-l", "debug",
	)

	got := &Config{}
	parseFlags(got)

	want := &Config{
		EndpointAddrHTTP:      "127.0.0.1:8080",
		EndpointAddrGRPC:      "127.0.0.1:9090",
		StoreDriver:           "sqlite",
		DatabaseDSN:           "file:inv.db",
		SecretKey:             "secret",
		TokenValidityDuration: 90 * time.Minute,
		LogLevel:              "debug",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags_KeepsValuesNotGiven(t *testing.T) {
	withArgs(t, "-c", "invtrack.json", "-k", "memory")

	got := &Config{
		EndpointAddrHTTP:      ":3000",
		StoreDriver:           "postgres",
		TokenValidityDuration: 24 * time.Hour,
		LogFormat:             "json",
		MaxBodyBytes:          1 << 20,
	}
	parseFlags(got)

	want := &Config{
		EndpointAddrHTTP:      ":3000",
		StoreDriver:           "memory",
		TokenValidityDuration: 24 * time.Hour,
		LogFormat:             "json",
		MaxBodyBytes:          1 << 20,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFlags_BadTokenValidityPanics(t *testing.T) {
	withArgs(t, "-t", "soon")
	require.Panics(t, func() { parseFlags(&Config{}) })
}

func TestParseFlags_AbsentTokenValidityKeepsSeconds(t *testing.T) {
	withArgs(t, "-l", "warn")

	got := &Config{TokenValidityDuration: 45 * time.Second}
	parseFlags(got)

	require.Equal(t, 45*time.Second, got.TokenValidityDuration)
}
