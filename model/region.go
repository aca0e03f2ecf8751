package model

// Region is a provider deployment unit the tenancy or account is subscribed to
type Region struct {
	Name string // e.g. "us-ashburn-1"
	Key  string // e.g. "IAD"
	Home bool
}
