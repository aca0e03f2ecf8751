package model

// AccountInfo represents cloud account/tenancy/project identity
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}
