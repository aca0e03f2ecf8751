package region

import (
	"errors"
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var subscribed = []model.Region{
	{Name: "us-ashburn-1", Key: "iad", Home: true},
	{Name: "us-phoenix-1", Key: "phx"},
	{Name: "eu-frankfurt-1", Key: "FRA"},
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name      string
		requested []string
		want      []string
	}{
		{
			name:      "no filter keeps every region",
			requested: nil,
			want:      []string{"us-ashburn-1", "us-phoenix-1", "eu-frankfurt-1"},
		},
		{
			name:      "by key",
			requested: []string{"phx"},
			want:      []string{"us-phoenix-1"},
		},
		{
			name:      "by name ignoring case",
			requested: []string{"US-Ashburn-1"},
			want:      []string{"us-ashburn-1"},
		},
		{
			name:      "key ignoring case",
			requested: []string{"fra"},
			want:      []string{"eu-frankfurt-1"},
		},
		{
			name:      "token order wins",
			requested: []string{"fra", "iad"},
			want:      []string{"eu-frankfurt-1", "us-ashburn-1"},
		},
		{
			name:      "name and key of the same region are returned once",
			requested: []string{"phx", "us-phoenix-1"},
			want:      []string{"us-phoenix-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(subscribed, tt.requested)
			require.NoError(t, err)
			assert.Equal(t, tt.want, Names(got))
		})
	}
}

func TestFilterExactRegion(t *testing.T) {
	all := []model.Region{
		{Name: "us-ashburn-1", Key: "iad"},
		{Name: "us-phoenix-1", Key: "phx"},
	}

	got, err := Filter(all, []string{"phx"})
	require.NoError(t, err)
	assert.Equal(t, []model.Region{{Name: "us-phoenix-1", Key: "phx"}}, got)
}

func TestFilterUnknownToken(t *testing.T) {
	got, err := Filter(subscribed, []string{"phx", "xyz"})
	require.Error(t, err)
	assert.Nil(t, got)

	var notFound *model.RegionNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "xyz", notFound.Token)
	assert.Contains(t, err.Error(), "xyz")
}
