package flag

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"AZURE_SUBSCRIPTION_ID", "GCP_PROJECT_ID"} {
		t.Setenv(key, "")
	}
}

func TestParseDefaults(t *testing.T) {
	isolate(t)

	flags, err := NewService().Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, model.ProviderOCI, flags.Provider)
	assert.Empty(t, flags.Regions)
	assert.False(t, flags.ShowRegion)
	assert.Equal(t, 50.0, flags.Threshold)
	assert.Equal(t, 10, flags.Concurrency)
	assert.Equal(t, model.DiscoveryFailureSkip, flags.DiscoveryFailure)
	assert.Equal(t, "warning", flags.LogLevel)
	assert.Equal(t, "DEFAULT", flags.OCIProfile)
	assert.Equal(t, "us-east-1", flags.AWSRegion)
}

func TestParseRegions(t *testing.T) {
	isolate(t)

	flags, err := NewService().Parse([]string{"-r", "phx,iad", "--region", "fra", "--show_region"})
	require.NoError(t, err)

	assert.Equal(t, []string{"phx", "iad", "fra"}, flags.Regions)
	assert.True(t, flags.ShowRegion)
}

func TestParseRegionTokenList(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "space separated", args: []string{"-r", "iad", "phx"}, want: []string{"iad", "phx"}},
		{name: "mixed separators", args: []string{"--region", "iad,fra", "phx"}, want: []string{"iad", "fra", "phx"}},
		{name: "flags after tokens", args: []string{"-r", "iad", "phx", "--verbose"}, want: []string{"iad", "phx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			flags, err := NewService().Parse(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, flags.Regions)
		})
	}
}

func TestParsePrecedence(t *testing.T) {
	isolate(t)

	config := filepath.Join(t.TempDir(), "ipam.yaml")
	require.NoError(t, os.WriteFile(config, []byte("threshold: 70\nconcurrency: 4\nverbose: true\n"), 0o600))

	t.Setenv("IPAM_DOCTOR_CONCURRENCY", "6")

	flags, err := NewService().Parse([]string{"--config", config, "--threshold", "80"})
	require.NoError(t, err)

	assert.Equal(t, 80.0, flags.Threshold, "flag beats file")
	assert.Equal(t, 6, flags.Concurrency, "env beats file")
	assert.True(t, flags.Verbose, "file beats default")
}

func TestParseProviderEnv(t *testing.T) {
	isolate(t)
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub-123")
	t.Setenv("IPAM_DOCTOR_REGIONS", "eastus,westeurope")

	flags, err := NewService().Parse([]string{"--provider", "AZURE"})
	require.NoError(t, err)

	assert.Equal(t, model.ProviderAzure, flags.Provider)
	assert.Equal(t, "sub-123", flags.Subscription)
	assert.Equal(t, []string{"eastus", "westeurope"}, flags.Regions)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown provider", args: []string{"--provider", "ibm"}},
		{name: "zero threshold", args: []string{"--threshold", "0"}},
		{name: "threshold above 100", args: []string{"--threshold", "101"}},
		{name: "zero concurrency", args: []string{"--concurrency", "0"}},
		{name: "unknown policy", args: []string{"--discovery-failure", "retry"}},
		{name: "unknown log level", args: []string{"--log-level", "chatty"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "missing config file", args: []string{"--config", "/does/not/exist.yaml"}},
		{name: "stray argument", args: []string{"--verbose", "phx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)

			_, err := NewService().Parse(tt.args)
			require.Error(t, err)

			var configErr *model.ConfigError
			assert.ErrorAs(t, err, &configErr)
		})
	}
}

func TestParseHelp(t *testing.T) {
	isolate(t)

	_, err := NewService().Parse([]string{"--help"})
	require.Error(t, err)
	assert.True(t, IsHelp(err))
}
