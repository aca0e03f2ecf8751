package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
)

// Config holds environment-based configuration for the MCP server
type Config struct {
	Provider    string
	Concurrency int
	LogLevel    string

	// OCI configuration
	OCIConfigFile string
	OCIProfile    string

	// AWS configuration
	AWSRegion  string
	AWSProfile string

	// GCP configuration
	GCPProjectID string

	// Azure configuration
	AzureSubscriptionID string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Provider:            strings.ToLower(getEnvOrDefault("IPAM_PROVIDER", model.ProviderOCI)),
		Concurrency:         getIntOrDefault("IPAM_CONCURRENCY", model.DefaultConcurrency),
		LogLevel:            getEnvOrDefault("IPAM_LOG_LEVEL", "info"),
		OCIConfigFile:       os.Getenv("OCI_CONFIG_FILE"),
		OCIProfile:          getEnvOrDefault("OCI_PROFILE", "DEFAULT"),
		AWSRegion:           getEnvOrDefault("AWS_REGION", "us-east-1"),
		AWSProfile:          os.Getenv("AWS_PROFILE"),
		GCPProjectID:        os.Getenv("GCP_PROJECT_ID"),
		AzureSubscriptionID: os.Getenv("AZURE_SUBSCRIPTION_ID"),
	}
}

// Flags returns the run settings the tools start from
func (c *Config) Flags() model.Flags {
	return model.Flags{
		Provider:         c.Provider,
		Threshold:        model.DefaultThreshold,
		Concurrency:      c.Concurrency,
		DiscoveryFailure: model.DiscoveryFailureSkip,
		LogLevel:         c.LogLevel,
		OCIConfigFile:    c.OCIConfigFile,
		OCIProfile:       c.OCIProfile,
		AWSRegion:        c.AWSRegion,
		AWSProfile:       c.AWSProfile,
		Project:          c.GCPProjectID,
		Subscription:     c.AzureSubscriptionID,
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value < 1 {
		return defaultValue
	}
	return value
}
