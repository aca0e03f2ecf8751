package main

import (
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"IPAM_PROVIDER", "IPAM_CONCURRENCY", "IPAM_LOG_LEVEL", "OCI_PROFILE", "AWS_REGION"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, model.ProviderOCI, cfg.Provider)
	assert.Equal(t, model.DefaultConcurrency, cfg.Concurrency)
	assert.Equal(t, "DEFAULT", cfg.OCIProfile)
	require.NoError(t, flag.Validate(cfg.Flags()))
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("IPAM_PROVIDER", "AWS")
	t.Setenv("IPAM_CONCURRENCY", "4")
	t.Setenv("AWS_PROFILE", "prod")

	flags := LoadConfig().Flags()
	assert.Equal(t, model.ProviderAWS, flags.Provider)
	assert.Equal(t, 4, flags.Concurrency)
	assert.Equal(t, "prod", flags.AWSProfile)
	assert.Equal(t, model.DefaultThreshold, flags.Threshold)
}

func TestLoadConfigIgnoresBadConcurrency(t *testing.T) {
	t.Setenv("IPAM_CONCURRENCY", "zero")
	assert.Equal(t, model.DefaultConcurrency, LoadConfig().Concurrency)
}
