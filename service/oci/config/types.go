package ociconfig

import "github.com/oracle/oci-go-sdk/v65/common"

type service struct{}

type ConfigService interface {
	GetConfigurationProvider(configFile, profile string) (common.ConfigurationProvider, error)
}
