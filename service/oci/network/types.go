package ocinetwork

import (
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/resourcesearch"
)

const (
	subnetQuery = "query subnet resources"
	pageLimit   = 1000
)

type service struct {
	region  string
	network core.VirtualNetworkClient
	search  resourcesearch.ResourceSearchClient
}
