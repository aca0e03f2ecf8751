package flag

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/utils"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix         = "IPAM_DOCTOR"
	defaultConfigName = ".ipam-doctor.yaml"
)

// flag name -> config key
var boundKeys = map[string]string{
	"provider":           "provider",
	"region":             "regions",
	"threshold":          "threshold",
	"concurrency":        "concurrency",
	"discovery-failure":  "discovery_failure",
	"verbose":            "verbose",
	"chart":              "chart",
	"metrics-file":       "metrics_file",
	"log-level":          "log_level",
	"oci-config-file":    "oci_config_file",
	"oci-profile":        "oci_profile",
	"aws-profile":        "aws_profile",
	"aws-region":         "aws_region",
	"azure-subscription": "azure_subscription",
	"gcp-project":        "gcp_project",
}

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	return s.Parse(os.Args[1:])
}

// Parse reads the settings from args, the environment and the config file,
// in that order of precedence, and validates them
func (s *service) Parse(args []string) (model.Flags, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return model.Flags{}, &model.ConfigError{Err: err}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for flagName, key := range boundKeys {
		if err := v.BindPFlag(key, fs.Lookup(flagName)); err != nil {
			return model.Flags{}, &model.ConfigError{Err: fmt.Errorf("failed to bind flag %s: %w", flagName, err)}
		}
	}
	_ = v.BindEnv("azure_subscription", envPrefix+"_AZURE_SUBSCRIPTION", "AZURE_SUBSCRIPTION_ID")
	_ = v.BindEnv("gcp_project", envPrefix+"_GCP_PROJECT", "GCP_PROJECT_ID")

	configFile, _ := fs.GetString("config")
	if err := readConfigFile(v, configFile); err != nil {
		return model.Flags{}, &model.ConfigError{Err: err}
	}

	regions, err := regionTokens(fs, v)
	if err != nil {
		return model.Flags{}, &model.ConfigError{Err: err}
	}

	showRegion, _ := fs.GetBool("show-region")

	flags := model.Flags{
		Provider:         strings.ToLower(strings.TrimSpace(v.GetString("provider"))),
		Regions:          regions,
		ShowRegion:       showRegion,
		Threshold:        v.GetFloat64("threshold"),
		Concurrency:      v.GetInt("concurrency"),
		DiscoveryFailure: model.DiscoveryFailurePolicy(strings.ToLower(v.GetString("discovery_failure"))),
		Verbose:          v.GetBool("verbose"),
		Chart:            v.GetBool("chart"),
		MetricsFile:      v.GetString("metrics_file"),
		LogLevel:         v.GetString("log_level"),
		OCIConfigFile:    v.GetString("oci_config_file"),
		OCIProfile:       v.GetString("oci_profile"),
		AWSRegion:        v.GetString("aws_region"),
		AWSProfile:       v.GetString("aws_profile"),
		Project:          v.GetString("gcp_project"),
		Subscription:     v.GetString("azure_subscription"),
	}

	if err := Validate(flags); err != nil {
		return model.Flags{}, &model.ConfigError{Err: err}
	}

	return flags, nil
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("ipam-doctor", pflag.ContinueOnError)
	fs.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.String("provider", model.ProviderOCI, "Cloud provider: oci, aws, azure or gcp")
	fs.StringSliceP("region", "r", nil, "Limit the report to these regions, by name or key (space or comma separated, repeatable)")
	fs.Bool("show-region", false, "Print the subscribed regions and exit")
	fs.Float64("threshold", model.DefaultThreshold, "Report subnets at or above this utilization percentage")
	fs.Int("concurrency", model.DefaultConcurrency, "Maximum in-flight API calls per region")
	fs.String("discovery-failure", string(model.DiscoveryFailureSkip), "What to do when a region's subnet search fails: skip or abort")
	fs.Bool("verbose", false, "List every active address of each reported subnet")
	fs.Bool("chart", false, "Draw a utilization bar chart per region")
	fs.String("metrics-file", "", "Write run metrics to this file in the prometheus text format")
	fs.String("log-level", "warning", "Log level: debug, info, warning or error")
	fs.String("config", "", "Config file (default $HOME/"+defaultConfigName+" if present)")

	fs.String("oci-config-file", "", "OCI config file (default ~/.oci/config)")
	fs.String("oci-profile", "DEFAULT", "OCI config profile")
	fs.String("aws-profile", "", "AWS profile configuration")
	fs.String("aws-region", "us-east-1", "AWS region used to list the enabled regions")
	fs.String("azure-subscription", "", "Azure subscription ID")
	fs.String("gcp-project", "", "GCP project ID")

	return fs
}

func readConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(home, defaultConfigName)
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return nil
}

// regionTokens returns the region tokens. Positional arguments are extra
// tokens of --region, so "-r iad phx" selects both regions.
func regionTokens(fs *pflag.FlagSet, v *viper.Viper) ([]string, error) {
	regions := splitTokens(v.GetStringSlice("regions"))

	extra := fs.Args()
	if len(extra) == 0 {
		return regions, nil
	}
	if !fs.Changed("region") {
		return nil, fmt.Errorf("unexpected arguments %q", extra)
	}
	return append(regions, splitTokens(extra)...), nil
}

// splitTokens flattens comma separated entries and drops empty ones
func splitTokens(values []string) []string {
	var tokens []string
	for _, value := range values {
		for _, token := range strings.Split(value, ",") {
			if token = strings.TrimSpace(token); token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// Validate checks the settings that have a fixed domain
func Validate(flags model.Flags) error {
	switch flags.Provider {
	case model.ProviderOCI, model.ProviderAWS, model.ProviderAzure, model.ProviderGCP:
	default:
		return fmt.Errorf("unknown provider %q", flags.Provider)
	}

	if flags.Threshold <= 0 || flags.Threshold > 100 {
		return fmt.Errorf("threshold must be in (0, 100], got %g", flags.Threshold)
	}

	if flags.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", flags.Concurrency)
	}

	switch flags.DiscoveryFailure {
	case model.DiscoveryFailureSkip, model.DiscoveryFailureAbort:
	default:
		return fmt.Errorf("unknown discovery failure policy %q", flags.DiscoveryFailure)
	}

	if _, err := utils.ParseLogLevel(flags.LogLevel); err != nil {
		return err
	}

	return nil
}

// IsHelp reports whether err came from a -h or --help request
func IsHelp(err error) bool {
	return errors.Is(err, pflag.ErrHelp)
}
