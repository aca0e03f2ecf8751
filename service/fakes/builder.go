package fakes

import (
	"fmt"

	"github.com/elC0mpa/ipam-doctor/model"
)

// Addresses returns n addresses 10.0.<octet>.10 upwards, labelled vnic-<i>
func Addresses(octet, n int) []model.PrivateAddress {
	out := make([]model.PrivateAddress, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.PrivateAddress{
			Address: fmt.Sprintf("10.0.%d.%d", octet, 10+i),
			Label:   fmt.Sprintf("vnic-%d", i),
		})
	}
	return out
}

// NewSubnet returns a healthy subnet with n listed addresses
func NewSubnet(id, name, cidr string, octet, n int) Subnet {
	return Subnet{
		Details:   model.SubnetDetails{ID: id, Name: name, CIDR: cidr},
		Addresses: Addresses(octet, n),
	}
}
