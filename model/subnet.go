package model

// SubnetReference identifies a subnet found by discovery
type SubnetReference struct {
	Region string
	ID     string
}

// SubnetDetails is the subnet metadata needed for analysis
type SubnetDetails struct {
	ID   string
	Name string
	CIDR string
}

// PrivateAddress is one allocated address inside a subnet
type PrivateAddress struct {
	Address string
	Label   string
}

// SubnetRecord accumulates the results of the detail and address fetches
// for one subnet. The two fields are written by different tasks.
type SubnetRecord struct {
	Region    string
	ID        string
	Details   *SubnetDetails
	Addresses []PrivateAddress

	// AddressesFetched is true when the address listing succeeded, even if
	// it returned nothing.
	AddressesFetched bool
	DetailsErr       error
	AddressesErr     error
}

// Complete reports whether the record can be analyzed.
func (r SubnetRecord) Complete() bool {
	return r.Details != nil && len(r.Addresses) > 0
}

// SkipReason explains why a record was left out of the analysis
type SkipReason string

const (
	SkipMissingDetails   SkipReason = "missing_details"
	SkipMissingAddresses SkipReason = "missing_addresses"
	SkipNoAddresses      SkipReason = "no_addresses"
	SkipInvalidCIDR      SkipReason = "invalid_cidr"
)

// SkipReasons lists every reason in display order
var SkipReasons = []SkipReason{
	SkipMissingDetails,
	SkipMissingAddresses,
	SkipNoAddresses,
	SkipInvalidCIDR,
}
