package fakes

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
)

// Subnet is one subnet served by the fake provider
type Subnet struct {
	Details      model.SubnetDetails
	Addresses    []model.PrivateAddress
	DetailsErr   error
	AddressesErr error
}

// Provider is an in-memory cloud. It implements the region, identity and
// client factory contracts and records how many calls are in flight.
type Provider struct {
	RegionList []model.Region
	RegionsErr error
	Account    *model.AccountInfo
	AccountErr error

	// Subnets holds the subnets of each region in search order
	Subnets   map[string][]Subnet
	SearchErr map[string]error
	InitErr   map[string]error

	// Latency is added to every per-subnet call
	Latency time.Duration

	mu         sync.Mutex
	inFlight   map[string]int
	peak       map[string]int
	total      int
	totalPeak  int
	calls      map[string]int
	initCalled int
}

// NewProvider returns an empty fake provider
func NewProvider(regions ...model.Region) *Provider {
	return &Provider{
		RegionList: regions,
		Subnets:    map[string][]Subnet{},
		SearchErr:  map[string]error{},
		InitErr:    map[string]error{},
	}
}

// AddSubnet appends a subnet to a region
func (p *Provider) AddSubnet(region string, subnet Subnet) {
	p.Subnets[region] = append(p.Subnets[region], subnet)
}

// Bundle returns the provider wired as a service.Provider
func (p *Provider) Bundle() *service.Provider {
	return &service.Provider{
		Name:     "fake",
		Regions:  p,
		Clients:  p,
		Identity: p,
	}
}

func (p *Provider) ListSubscribedRegions(ctx context.Context) ([]model.Region, error) {
	if p.RegionsErr != nil {
		return nil, p.RegionsErr
	}
	return append([]model.Region(nil), p.RegionList...), nil
}

func (p *Provider) GetAccountInfo(ctx context.Context) (*model.AccountInfo, error) {
	if p.AccountErr != nil {
		return nil, p.AccountErr
	}
	if p.Account != nil {
		return p.Account, nil
	}
	return &model.AccountInfo{Provider: "fake", AccountID: "fake-account"}, nil
}

func (p *Provider) NewRegionalClient(region model.Region) (service.NetworkClient, error) {
	p.mu.Lock()
	p.initCalled++
	p.mu.Unlock()

	if err := p.InitErr[region.Name]; err != nil {
		return nil, err
	}
	return &regionClient{provider: p, region: region.Name}, nil
}

// PeakInFlight returns the highest number of concurrent per-subnet calls
// seen in a region
func (p *Provider) PeakInFlight(region string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peak[region]
}

// TotalPeakInFlight returns the highest number of concurrent per-subnet
// calls seen across all regions
func (p *Provider) TotalPeakInFlight() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.totalPeak
}

// Calls returns how many times a call was made in a region
func (p *Provider) Calls(region, call string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[region+"/"+call]
}

// ClientsBuilt returns how many regional clients were requested
func (p *Provider) ClientsBuilt() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initCalled
}

func (p *Provider) enter(region, call string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.inFlight == nil {
		p.inFlight = map[string]int{}
		p.peak = map[string]int{}
		p.calls = map[string]int{}
	}
	p.calls[region+"/"+call]++
	p.inFlight[region]++
	p.total++
	if p.inFlight[region] > p.peak[region] {
		p.peak[region] = p.inFlight[region]
	}
	if p.total > p.totalPeak {
		p.totalPeak = p.total
	}
}

func (p *Provider) leave(region string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight[region]--
	p.total--
}

func (p *Provider) find(region, subnetID string) (Subnet, bool) {
	for _, s := range p.Subnets[region] {
		if s.Details.ID == subnetID {
			return s, true
		}
	}
	return Subnet{}, false
}

type regionClient struct {
	provider *Provider
	region   string
}

func (c *regionClient) SearchSubnets(ctx context.Context) ([]string, error) {
	c.provider.enter(c.region, "search")
	defer c.provider.leave(c.region)

	if err := c.provider.SearchErr[c.region]; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(c.provider.Subnets[c.region]))
	for _, s := range c.provider.Subnets[c.region] {
		ids = append(ids, s.Details.ID)
	}
	return ids, nil
}

func (c *regionClient) GetSubnet(ctx context.Context, subnetID string) (*model.SubnetDetails, error) {
	c.provider.enter(c.region, "details")
	defer c.provider.leave(c.region)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	s, ok := c.provider.find(c.region, subnetID)
	if !ok {
		return nil, fmt.Errorf("subnet %s not found", subnetID)
	}
	if s.DetailsErr != nil {
		return nil, s.DetailsErr
	}
	details := s.Details
	return &details, nil
}

func (c *regionClient) ListPrivateIPs(ctx context.Context, subnetID string) ([]model.PrivateAddress, error) {
	c.provider.enter(c.region, "addresses")
	defer c.provider.leave(c.region)

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	s, ok := c.provider.find(c.region, subnetID)
	if !ok {
		return nil, fmt.Errorf("subnet %s not found", subnetID)
	}
	if s.AddressesErr != nil {
		return nil, s.AddressesErr
	}
	return append([]model.PrivateAddress(nil), s.Addresses...), nil
}

func (c *regionClient) wait(ctx context.Context) error {
	if c.provider.Latency <= 0 {
		return nil
	}

	select {
	case <-time.After(c.provider.Latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
