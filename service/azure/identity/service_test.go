package azureidentity

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"
	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestToRegion(t *testing.T) {
	physical := armsubscriptions.RegionType("Physical")
	logical := armsubscriptions.RegionType("Logical")

	region, ok := toRegion(&armsubscriptions.Location{
		Name:     to.Ptr("eastus"),
		Metadata: &armsubscriptions.LocationMetadata{RegionType: &physical},
	})
	assert.True(t, ok)
	assert.Equal(t, model.Region{Name: "eastus", Key: "eastus"}, region)

	_, ok = toRegion(&armsubscriptions.Location{
		Name:     to.Ptr("global"),
		Metadata: &armsubscriptions.LocationMetadata{RegionType: &logical},
	})
	assert.False(t, ok)

	_, ok = toRegion(nil)
	assert.False(t, ok)
}
