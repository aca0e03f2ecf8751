package provider

import (
	"context"
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUnknownProvider(t *testing.T) {
	_, err := Build(context.Background(), model.Flags{Provider: "ibm"})
	require.Error(t, err)

	var configErr *model.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestBuildAzureRequiresSubscription(t *testing.T) {
	_, err := Build(context.Background(), model.Flags{Provider: model.ProviderAzure})
	require.Error(t, err)

	var configErr *model.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestBuildOCIMissingProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Build(context.Background(), model.Flags{
		Provider:      model.ProviderOCI,
		OCIConfigFile: t.TempDir() + "/missing",
		OCIProfile:    "DEFAULT",
	})
	require.Error(t, err)

	var configErr *model.ConfigError
	assert.ErrorAs(t, err, &configErr)
}
