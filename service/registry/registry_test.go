package registry

import (
	"errors"
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/fakes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var regions = []model.Region{
	{Name: "us-ashburn-1", Key: "IAD"},
	{Name: "us-phoenix-1", Key: "PHX"},
}

func TestBuild(t *testing.T) {
	p := fakes.NewProvider(regions...)

	reg, err := Build(regions, p)
	require.NoError(t, err)

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, regions, reg.Regions())
	assert.Equal(t, 2, p.ClientsBuilt())

	client, ok := reg.Get("us-phoenix-1")
	assert.True(t, ok)
	assert.NotNil(t, client)

	_, ok = reg.Get("eu-frankfurt-1")
	assert.False(t, ok)
}

func TestBuildFailure(t *testing.T) {
	p := fakes.NewProvider(regions...)
	p.InitErr["us-ashburn-1"] = errors.New("bad key")

	reg, err := Build(regions, p)
	assert.Nil(t, reg)

	var initErr *model.ClientInitError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, "us-ashburn-1", initErr.Region)
	assert.EqualError(t, initErr.Err, "bad key")
	assert.Equal(t, 1, p.ClientsBuilt())
}

func TestBuildEmpty(t *testing.T) {
	reg, err := Build(nil, fakes.NewProvider())
	require.NoError(t, err)
	assert.Zero(t, reg.Len())
}
