package registry

import (
	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service"
)

// Registry holds one NetworkClient per region. It is filled once by Build
// and only read afterwards, so it needs no locking.
type Registry struct {
	regions []model.Region
	clients map[string]service.NetworkClient
}

// Build constructs the clients of every region. The first failure aborts.
func Build(regions []model.Region, factory service.ClientFactory) (*Registry, error) {
	r := &Registry{
		regions: regions,
		clients: make(map[string]service.NetworkClient, len(regions)),
	}

	for _, region := range regions {
		client, err := factory.NewRegionalClient(region)
		if err != nil {
			return nil, &model.ClientInitError{Region: region.Name, Err: err}
		}
		r.clients[region.Name] = client
	}

	return r, nil
}

// Get returns the client of a region, or false if the region was not built
func (r *Registry) Get(regionName string) (service.NetworkClient, bool) {
	client, ok := r.clients[regionName]
	return client, ok
}

// Regions returns the regions in build order
func (r *Registry) Regions() []model.Region {
	return r.regions
}

// Len returns the number of regions with clients
func (r *Registry) Len() int {
	return len(r.clients)
}
