package ociconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oracle/oci-go-sdk/v65/common"
)

const DefaultProfile = "DEFAULT"

func NewService() *service {
	return &service{}
}

// GetConfigurationProvider loads a profile of an OCI config file and checks
// that it carries usable credentials
func (s *service) GetConfigurationProvider(configFile, profile string) (common.ConfigurationProvider, error) {
	path, err := ConfigPath(configFile)
	if err != nil {
		return nil, err
	}
	if profile == "" {
		profile = DefaultProfile
	}

	provider := common.CustomProfileConfigProvider(path, profile)
	if ok, err := common.IsConfigurationProviderValid(provider); !ok {
		return nil, fmt.Errorf("failed to load OCI profile %s from %s: %w", profile, path, err)
	}

	return provider, nil
}

// ConfigPath returns configFile, or ~/.oci/config when it is empty
func ConfigPath(configFile string) (string, error) {
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".oci", "config"), nil
}
