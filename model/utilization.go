package model

import (
	"math"
	"time"
)

// ActiveAddress is an address counted as in use when computing utilization
type ActiveAddress struct {
	Address  string
	Label    string
	Reserved bool
}

// UtilizationResult is the computed utilization of one subnet
type UtilizationResult struct {
	Region          string
	SubnetID        string
	SubnetName      string
	CIDR            string
	TotalSize       uint64
	ActiveCount     int
	Utilization     float64
	ActiveAddresses []ActiveAddress
}

// RoundedUtilization returns the utilization rounded to a whole percent,
// halves to even
func (r UtilizationResult) RoundedUtilization() int {
	return int(math.RoundToEven(r.Utilization))
}

// HighUtilizationIndex groups the subnets at or above the threshold by region.
// Regions only lists regions that have at least one entry.
type HighUtilizationIndex struct {
	Regions []string
	Buckets map[string][]UtilizationResult
}

// NewHighUtilizationIndex returns an empty index
func NewHighUtilizationIndex() HighUtilizationIndex {
	return HighUtilizationIndex{
		Buckets: map[string][]UtilizationResult{},
	}
}

// Add appends a result to its region's bucket, keeping insertion order
func (idx *HighUtilizationIndex) Add(result UtilizationResult) {
	if idx.Buckets == nil {
		idx.Buckets = map[string][]UtilizationResult{}
	}
	if _, ok := idx.Buckets[result.Region]; !ok {
		idx.Regions = append(idx.Regions, result.Region)
	}
	idx.Buckets[result.Region] = append(idx.Buckets[result.Region], result)
}

// Len returns the number of subnets in the index
func (idx HighUtilizationIndex) Len() int {
	total := 0
	for _, bucket := range idx.Buckets {
		total += len(bucket)
	}
	return total
}

// AnalysisReport is the analyzer output: the index plus skip diagnostics
type AnalysisReport struct {
	Index     HighUtilizationIndex
	Threshold float64
	Evaluated int
	Skipped   map[SkipReason]int
}

// SkippedTotal returns the number of records left out of the analysis
func (r AnalysisReport) SkippedTotal() int {
	total := 0
	for _, count := range r.Skipped {
		total += count
	}
	return total
}

// RunResult is everything one collection run produced
type RunResult struct {
	Account       *AccountInfo
	Report        AnalysisReport
	FailedRegions []string
	Duration      time.Duration
}
