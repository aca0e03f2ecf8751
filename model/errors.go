package model

import (
	"errors"
	"fmt"
)

// ErrEarlyExit is returned after the subscribed regions were printed on request
var ErrEarlyExit = errors.New("early termination requested")

// ConfigError is a credential, profile or settings failure
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ProviderError is a failure of the region listing call
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: failed to list subscribed regions: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// RegionNotFoundError is returned when a region filter token matches nothing
type RegionNotFoundError struct {
	Token string
}

func (e *RegionNotFoundError) Error() string {
	return fmt.Sprintf("unable to find region %q, verify your region syntax", e.Token)
}

// ClientInitError is a failure to build a region's API clients
type ClientInitError struct {
	Region string
	Err    error
}

func (e *ClientInitError) Error() string {
	return fmt.Sprintf("failed to build clients for region %s: %v", e.Region, e.Err)
}

func (e *ClientInitError) Unwrap() error { return e.Err }

// DiscoveryError is a failure of a region's subnet search
type DiscoveryError struct {
	Region string
	Err    error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("subnet discovery failed in region %s: %v", e.Region, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// FetchCall names the per-subnet call that failed
type FetchCall string

const (
	FetchDetails   FetchCall = "details"
	FetchAddresses FetchCall = "addresses"
)

// FetchError is a failed detail or address fetch for one subnet. It is
// absorbed by the collector and never fails the run.
type FetchError struct {
	Region   string
	SubnetID string
	Call     FetchCall
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s of subnet %s in %s: %v", e.Call, e.SubnetID, e.Region, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
