package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/fakes"
	"github.com/elC0mpa/ipam-doctor/service/metrics"
	"github.com/elC0mpa/ipam-doctor/service/registry"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var regions = []model.Region{
	{Name: "us-ashburn-1", Key: "IAD"},
	{Name: "us-phoenix-1", Key: "PHX"},
	{Name: "eu-frankfurt-1", Key: "FRA"},
}

func newFake(t *testing.T) (*fakes.Provider, *registry.Registry) {
	t.Helper()

	p := fakes.NewProvider(regions...)
	p.AddSubnet("us-ashburn-1", fakes.NewSubnet("iad-a", "a", "10.0.0.0/24", 0, 1))
	p.AddSubnet("us-ashburn-1", fakes.NewSubnet("iad-b", "b", "10.0.1.0/24", 1, 1))
	p.AddSubnet("us-phoenix-1", fakes.NewSubnet("phx-a", "a", "10.0.2.0/24", 2, 1))

	reg, err := registry.Build(regions, p)
	require.NoError(t, err)
	return p, reg
}

func TestDiscover(t *testing.T) {
	_, reg := newFake(t)
	m := metrics.New()

	byRegion, failed, err := NewService(model.DiscoveryFailureSkip, zap.NewNop(), m).Discover(context.Background(), regions, reg)
	require.NoError(t, err)
	assert.Empty(t, failed)

	assert.Equal(t, []model.SubnetReference{
		{Region: "us-ashburn-1", ID: "iad-a"},
		{Region: "us-ashburn-1", ID: "iad-b"},
	}, byRegion["us-ashburn-1"])
	assert.Len(t, byRegion["us-phoenix-1"], 1)
	assert.Empty(t, byRegion["eu-frankfurt-1"])
	assert.Contains(t, byRegion, "eu-frankfurt-1")

	count, err := testutil.GatherAndCount(m.Registry(), "ipam_subnets_discovered")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestDiscoverFailurePolicy(t *testing.T) {
	boom := errors.New("search unavailable")

	t.Run("skip drops the failed region", func(t *testing.T) {
		p, reg := newFake(t)
		p.SearchErr["us-phoenix-1"] = boom

		byRegion, failed, err := NewService("", zap.NewNop(), nil).Discover(context.Background(), regions, reg)
		require.NoError(t, err)
		assert.Equal(t, []string{"us-phoenix-1"}, failed)
		assert.NotContains(t, byRegion, "us-phoenix-1")
		assert.Len(t, byRegion["us-ashburn-1"], 2)
	})

	t.Run("abort returns the first failure in region order", func(t *testing.T) {
		p, reg := newFake(t)
		p.SearchErr["eu-frankfurt-1"] = boom
		p.SearchErr["us-phoenix-1"] = errors.New("other failure")

		byRegion, _, err := NewService(model.DiscoveryFailureAbort, zap.NewNop(), nil).Discover(context.Background(), regions, reg)
		require.Error(t, err)
		assert.Nil(t, byRegion)

		var discoveryErr *model.DiscoveryError
		require.ErrorAs(t, err, &discoveryErr)
		assert.Equal(t, "us-phoenix-1", discoveryErr.Region)
	})
}

func TestDiscoverSearchesEveryRegionOnce(t *testing.T) {
	p, reg := newFake(t)

	_, _, err := NewService(model.DiscoveryFailureSkip, zap.NewNop(), nil).Discover(context.Background(), regions, reg)
	require.NoError(t, err)

	for _, r := range regions {
		assert.Equal(t, 1, p.Calls(r.Name, "search"), r.Name)
	}
}
