package model

type Flags struct {
	// Common flags
	Provider         string
	Regions          []string
	ShowRegion       bool
	Threshold        float64
	Concurrency      int
	DiscoveryFailure DiscoveryFailurePolicy
	Verbose          bool
	Chart            bool
	MetricsFile      string
	LogLevel         string

	// OCI-specific flags
	OCIConfigFile string
	OCIProfile    string

	// AWS-specific flags
	AWSRegion  string
	AWSProfile string

	// GCP-specific flags
	Project string

	// Azure-specific flags
	Subscription string
}

// DiscoveryFailurePolicy decides what happens to the run when subnet
// discovery fails for a single region.
type DiscoveryFailurePolicy string

const (
	DiscoveryFailureSkip  DiscoveryFailurePolicy = "skip"
	DiscoveryFailureAbort DiscoveryFailurePolicy = "abort"
)

const (
	ProviderOCI   = "oci"
	ProviderAWS   = "aws"
	ProviderAzure = "azure"
	ProviderGCP   = "gcp"
)

const (
	DefaultThreshold   = 50.0
	DefaultConcurrency = 10
)
