package awsec2

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/stretchr/testify/assert"
)

func TestRegionKey(t *testing.T) {
	tests := map[string]string{
		"us-east-1":      "use1",
		"eu-central-1":   "euc1",
		"ap-northeast-2": "apne2",
		"us-gov-west-1":  "usgw1",
		"il-central-1":   "ilc1",
		"local":          "local",
	}

	for name, want := range tests {
		assert.Equal(t, want, RegionKey(name), name)
	}
}

func TestInterfaceAddresses(t *testing.T) {
	eni := types.NetworkInterface{
		NetworkInterfaceId: aws.String("eni-123"),
		PrivateIpAddresses: []types.NetworkInterfacePrivateIpAddress{
			{PrivateIpAddress: aws.String("10.0.1.10")},
			{PrivateIpAddress: aws.String("10.0.1.11")},
			{},
		},
	}

	assert.Equal(t, []model.PrivateAddress{
		{Address: "10.0.1.10", Label: "eni-123"},
		{Address: "10.0.1.11", Label: "eni-123"},
	}, interfaceAddresses(eni))

	eni.Description = aws.String("ELB app/web")
	assert.Equal(t, "ELB app/web", interfaceAddresses(eni)[0].Label)
}

func TestNameTag(t *testing.T) {
	tags := []types.Tag{
		{Key: aws.String("env"), Value: aws.String("prod")},
		{Key: aws.String("Name"), Value: aws.String("private-a")},
	}

	assert.Equal(t, "private-a", nameTag(tags, "subnet-1"))
	assert.Equal(t, "subnet-1", nameTag(nil, "subnet-1"))
}
