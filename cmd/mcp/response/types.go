package response

// AccountInfo represents cloud account/tenancy/project identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// Region represents one subscribed region
type Region struct {
	Name string `json:"name"`
	Key  string `json:"key,omitempty"`
	Home bool   `json:"home,omitempty"`
}

// RegionList is the result of the region listing tool
type RegionList struct {
	Provider string   `json:"provider"`
	Regions  []Region `json:"regions"`
}

// ActiveAddress represents an address counted against a subnet
type ActiveAddress struct {
	Address  string `json:"address"`
	Label    string `json:"label"`
	Reserved bool   `json:"reserved,omitempty"`
}

// Subnet represents one subnet at or above the threshold
type Subnet struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	CIDR            string          `json:"cidr"`
	TotalSize       uint64          `json:"total_size"`
	ActiveCount     int             `json:"active_count"`
	Utilization     float64         `json:"utilization_percent"`
	ActiveAddresses []ActiveAddress `json:"active_addresses,omitempty"`
}

// RegionUtilization groups the reported subnets of one region
type RegionUtilization struct {
	Region  string   `json:"region"`
	Subnets []Subnet `json:"subnets"`
}

// UtilizationReport is the result of the high utilization tool
type UtilizationReport struct {
	Account        *AccountInfo        `json:"account,omitempty"`
	Threshold      float64             `json:"threshold"`
	Evaluated      int                 `json:"evaluated"`
	Regions        []RegionUtilization `json:"regions"`
	Skipped        map[string]int      `json:"skipped,omitempty"`
	FailedRegions  []string            `json:"failed_regions,omitempty"`
	DurationSecond float64             `json:"duration_seconds"`
}
