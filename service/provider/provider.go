package provider

import (
	"context"
	"fmt"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
	awsconfig "github.com/elC0mpa/ipam-doctor/service/aws/config"
	awsec2 "github.com/elC0mpa/ipam-doctor/service/aws/ec2"
	awssts "github.com/elC0mpa/ipam-doctor/service/aws/sts"
	azureconfig "github.com/elC0mpa/ipam-doctor/service/azure/config"
	azureidentity "github.com/elC0mpa/ipam-doctor/service/azure/identity"
	azurenetwork "github.com/elC0mpa/ipam-doctor/service/azure/network"
	gcpcompute "github.com/elC0mpa/ipam-doctor/service/gcp/compute"
	gcpconfig "github.com/elC0mpa/ipam-doctor/service/gcp/config"
	gcpidentity "github.com/elC0mpa/ipam-doctor/service/gcp/identity"
	ociconfig "github.com/elC0mpa/ipam-doctor/service/oci/config"
	ociidentity "github.com/elC0mpa/ipam-doctor/service/oci/identity"
	ocinetwork "github.com/elC0mpa/ipam-doctor/service/oci/network"
)

// Build wires the services of the provider named in flags. Credential and
// profile problems are returned as ConfigError.
func Build(ctx context.Context, flags model.Flags) (*service.Provider, error) {
	switch flags.Provider {
	case model.ProviderOCI, "":
		return buildOCI(flags)
	case model.ProviderAWS:
		return buildAWS(ctx, flags)
	case model.ProviderAzure:
		return buildAzure(flags)
	case model.ProviderGCP:
		return buildGCP(ctx, flags)
	default:
		return nil, &model.ConfigError{Err: fmt.Errorf("unknown provider %q", flags.Provider)}
	}
}

func buildOCI(flags model.Flags) (*service.Provider, error) {
	configProvider, err := ociconfig.NewService().GetConfigurationProvider(flags.OCIConfigFile, flags.OCIProfile)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	identityService, err := ociidentity.NewService(configProvider)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	return &service.Provider{
		Name:     model.ProviderOCI,
		Regions:  identityService,
		Identity: identityService,
		Clients: service.ClientFactoryFunc(func(region model.Region) (service.NetworkClient, error) {
			return ocinetwork.NewService(configProvider, region.Name)
		}),
	}, nil
}

func buildAWS(ctx context.Context, flags model.Flags) (*service.Provider, error) {
	awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, flags.AWSRegion, flags.AWSProfile)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	return &service.Provider{
		Name:     model.ProviderAWS,
		Regions:  awsec2.NewService(awsCfg),
		Identity: awssts.NewService(awsCfg),
		Clients: service.ClientFactoryFunc(func(region model.Region) (service.NetworkClient, error) {
			return awsec2.NewRegionalService(awsCfg, region.Name), nil
		}),
	}, nil
}

func buildAzure(flags model.Flags) (*service.Provider, error) {
	cfgService, err := azureconfig.NewService(flags.Subscription)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	subscriptionID := cfgService.GetSubscriptionID()
	credential := cfgService.GetCredential()

	identityService, err := azureidentity.NewService(subscriptionID, credential)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	return &service.Provider{
		Name:     model.ProviderAzure,
		Regions:  identityService,
		Identity: identityService,
		Clients: service.ClientFactoryFunc(func(region model.Region) (service.NetworkClient, error) {
			return azurenetwork.NewService(credential, subscriptionID, region.Name)
		}),
	}, nil
}

func buildGCP(ctx context.Context, flags model.Flags) (*service.Provider, error) {
	cfgService := gcpconfig.NewService(flags.Project)

	projectID, err := cfgService.GetProjectID(ctx)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	opts, err := cfgService.ClientOptions(ctx)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	computeService, err := gcpcompute.NewService(ctx, projectID, opts...)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	identityService, err := gcpidentity.NewService(ctx, projectID, opts...)
	if err != nil {
		return nil, &model.ConfigError{Err: err}
	}

	return &service.Provider{
		Name:     model.ProviderGCP,
		Regions:  computeService,
		Identity: identityService,
		Clients: service.ClientFactoryFunc(func(region model.Region) (service.NetworkClient, error) {
			return computeService.ForRegion(region.Name), nil
		}),
	}, nil
}
