package response

import (
	"math"

	"github.com/elC0mpa/ipam-doctor/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertRegions converts the subscribed regions of a provider
func ConvertRegions(provider string, regions []model.Region) RegionList {
	list := RegionList{
		Provider: provider,
		Regions:  make([]Region, 0, len(regions)),
	}
	for _, r := range regions {
		list.Regions = append(list.Regions, Region{Name: r.Name, Key: r.Key, Home: r.Home})
	}
	return list
}

// ConvertRunResult converts a collection run, keeping the region order of
// the index. Addresses are only included when withAddresses is set.
func ConvertRunResult(result *model.RunResult, withAddresses bool) UtilizationReport {
	if result == nil {
		return UtilizationReport{Regions: []RegionUtilization{}}
	}

	report := result.Report
	resp := UtilizationReport{
		Account:        ConvertAccountInfo(result.Account),
		Threshold:      report.Threshold,
		Evaluated:      report.Evaluated,
		Regions:        make([]RegionUtilization, 0, len(report.Index.Regions)),
		FailedRegions:  result.FailedRegions,
		DurationSecond: math.Round(result.Duration.Seconds()*10) / 10,
	}

	for _, region := range report.Index.Regions {
		bucket := RegionUtilization{Region: region}
		for _, r := range report.Index.Buckets[region] {
			bucket.Subnets = append(bucket.Subnets, convertSubnet(r, withAddresses))
		}
		resp.Regions = append(resp.Regions, bucket)
	}

	for _, reason := range model.SkipReasons {
		if count := report.Skipped[reason]; count > 0 {
			if resp.Skipped == nil {
				resp.Skipped = map[string]int{}
			}
			resp.Skipped[string(reason)] = count
		}
	}

	return resp
}

func convertSubnet(r model.UtilizationResult, withAddresses bool) Subnet {
	subnet := Subnet{
		ID:          r.SubnetID,
		Name:        r.SubnetName,
		CIDR:        r.CIDR,
		TotalSize:   r.TotalSize,
		ActiveCount: r.ActiveCount,
		Utilization: math.Round(r.Utilization*100) / 100,
	}
	if withAddresses {
		for _, a := range r.ActiveAddresses {
			subnet.ActiveAddresses = append(subnet.ActiveAddresses, ActiveAddress{
				Address:  a.Address,
				Label:    a.Label,
				Reserved: a.Reserved,
			})
		}
	}
	return subnet
}
