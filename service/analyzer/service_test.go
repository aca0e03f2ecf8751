package analyzer

import (
	"errors"
	"net/netip"
	"testing"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// hosts returns n addresses of prefix starting at the given offset
func hosts(t *testing.T, cidr string, offset, n int) []model.PrivateAddress {
	t.Helper()

	prefix := netip.MustParsePrefix(cidr)
	addr := prefix.Addr()
	for i := 0; i < offset; i++ {
		addr = addr.Next()
	}

	out := make([]model.PrivateAddress, 0, n)
	for i := 0; i < n; i++ {
		require.True(t, prefix.Contains(addr), "address %s outside %s", addr, cidr)
		out = append(out, model.PrivateAddress{Address: addr.String(), Label: "vnic"})
		addr = addr.Next()
	}
	return out
}

type fixture struct {
	id        string
	cidr      string
	addresses []model.PrivateAddress
	noDetails bool
	fetchErr  error
}

func seed(region string, fixtures ...fixture) *store.Records {
	records := store.New()

	refs := make([]model.SubnetReference, 0, len(fixtures))
	for _, f := range fixtures {
		refs = append(refs, model.SubnetReference{Region: region, ID: f.id})
	}
	records.Seed(region, refs)

	for _, f := range fixtures {
		if !f.noDetails {
			records.SetDetails(region, f.id, &model.SubnetDetails{ID: f.id, Name: f.id + "-name", CIDR: f.cidr})
		}
		if f.fetchErr != nil {
			records.SetError(region, f.id, model.FetchAddresses, f.fetchErr)
			continue
		}
		records.SetAddresses(region, f.id, f.addresses)
	}
	return records
}

func TestEvaluateUtilizationFormula(t *testing.T) {
	details := model.SubnetDetails{ID: "s1", Name: "app", CIDR: "10.0.0.0/24"}

	result, err := Evaluate("us-ashburn-1", details, hosts(t, "10.0.0.0/24", 10, 10))
	require.NoError(t, err)

	assert.Equal(t, uint64(256), result.TotalSize)
	assert.Equal(t, 12, result.ActiveCount)
	assert.InDelta(t, 4.6875, result.Utilization, 1e-9)
	assert.Equal(t, 5, result.RoundedUtilization())
	assert.Equal(t, "10.0.0.0", result.ActiveAddresses[0].Address)
	assert.True(t, result.ActiveAddresses[0].Reserved)
	assert.Equal(t, "10.0.0.1", result.ActiveAddresses[1].Address)
}

func TestEvaluateRoundsHalvesToEven(t *testing.T) {
	tests := []struct {
		cidr   string
		listed int
		want   int
	}{
		{cidr: "10.0.0.0/28", listed: 8, want: 62},
		{cidr: "10.0.0.0/26", listed: 38, want: 62},
		{cidr: "10.0.0.0/28", listed: 4, want: 38},
	}

	for _, tt := range tests {
		t.Run(tt.cidr, func(t *testing.T) {
			details := model.SubnetDetails{ID: "s1", Name: "app", CIDR: tt.cidr}

			result, err := Evaluate("us-ashburn-1", details, hosts(t, tt.cidr, 2, tt.listed))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.RoundedUtilization())
		})
	}
}

func TestEvaluateReservedAccounting(t *testing.T) {
	tests := []struct {
		name      string
		addresses []model.PrivateAddress
		want      int
	}{
		{
			name:      "listed gateway is not counted twice",
			addresses: []model.PrivateAddress{{Address: "10.0.0.1"}, {Address: "10.0.0.20"}},
			want:      3,
		},
		{
			name:      "listed broadcast is counted",
			addresses: []model.PrivateAddress{{Address: "10.0.0.255"}},
			want:      3,
		},
		{
			name:      "duplicate listing is counted once",
			addresses: []model.PrivateAddress{{Address: "10.0.0.9"}, {Address: "10.0.0.9"}},
			want:      3,
		},
		{
			name:      "entries without an address are counted",
			addresses: []model.PrivateAddress{{Label: "ipconfig-lb"}, {Label: "ipconfig-gw"}},
			want:      4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Evaluate("r", model.SubnetDetails{ID: "s", CIDR: "10.0.0.0/24"}, tt.addresses)
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.ActiveCount)
		})
	}
}

func TestEvaluateInvalidCIDR(t *testing.T) {
	for _, cidr := range []string{"", "not-a-cidr", "10.0.0.0", "2001:db8::/64"} {
		_, err := Evaluate("r", model.SubnetDetails{ID: "s", CIDR: cidr}, []model.PrivateAddress{{Address: "10.0.0.5"}})
		assert.Error(t, err, cidr)
	}
}

func TestAnalyzeThresholdBoundary(t *testing.T) {
	region := []model.Region{{Name: "r"}}

	// 126 listed + network + gateway = 128 of 256
	atHalf := fixture{id: "at-half", cidr: "10.0.0.0/24", addresses: hosts(t, "10.0.0.0/24", 2, 126)}
	// 32765 listed + 2 = 32767 of 65536, 49.998%
	justBelow := fixture{id: "just-below", cidr: "10.1.0.0/16", addresses: hosts(t, "10.1.0.0/16", 2, 32765)}

	report := NewService(zap.NewNop()).Analyze(region, seed("r", atHalf, justBelow), model.DefaultThreshold)

	require.Equal(t, []string{"r"}, report.Index.Regions)
	bucket := report.Index.Buckets["r"]
	require.Len(t, bucket, 1)
	assert.Equal(t, "at-half", bucket[0].SubnetID)
	assert.Equal(t, 50.0, bucket[0].Utilization)
	assert.Equal(t, 2, report.Evaluated)
}

func TestAnalyzeSkipsIncompleteRecords(t *testing.T) {
	region := []model.Region{{Name: "r"}}
	full := hosts(t, "10.0.0.0/28", 2, 10)

	records := seed("r",
		fixture{id: "complete", cidr: "10.0.0.0/28", addresses: full},
		fixture{id: "no-details", cidr: "10.0.0.0/28", addresses: full, noDetails: true},
		fixture{id: "fetch-failed", cidr: "10.0.0.0/28", fetchErr: errors.New("boom")},
		fixture{id: "empty", cidr: "10.0.0.0/28"},
		fixture{id: "bad-cidr", cidr: "bogus", addresses: full},
	)

	report := NewService(zap.NewNop()).Analyze(region, records, model.DefaultThreshold)

	assert.Equal(t, 1, report.Evaluated)
	assert.Equal(t, 1, report.Index.Len())
	assert.Equal(t, "complete", report.Index.Buckets["r"][0].SubnetID)
	assert.Equal(t, map[model.SkipReason]int{
		model.SkipMissingDetails:   1,
		model.SkipMissingAddresses: 1,
		model.SkipNoAddresses:      1,
		model.SkipInvalidCIDR:      1,
	}, report.Skipped)
	assert.Equal(t, 4, report.SkippedTotal())
}

func TestAnalyzeOrderingAndEmptyRegions(t *testing.T) {
	regions := []model.Region{{Name: "first"}, {Name: "quiet"}, {Name: "second"}}
	records := store.New()

	for _, name := range []string{"second", "quiet", "first"} {
		records.Seed(name, []model.SubnetReference{{Region: name, ID: name + "-b"}, {Region: name, ID: name + "-a"}})
		for _, id := range []string{name + "-b", name + "-a"} {
			cidr := "10.0.0.0/28"
			if name == "quiet" {
				cidr = "10.0.0.0/16"
			}
			records.SetDetails(name, id, &model.SubnetDetails{ID: id, CIDR: cidr})
			records.SetAddresses(name, id, hosts(t, "10.0.0.0/28", 2, 12))
		}
	}

	report := NewService(zap.NewNop()).Analyze(regions, records, model.DefaultThreshold)

	assert.Equal(t, []string{"first", "second"}, report.Index.Regions)
	assert.NotContains(t, report.Index.Buckets, "quiet")
	assert.Equal(t, "first-b", report.Index.Buckets["first"][0].SubnetID)
	assert.Equal(t, "first-a", report.Index.Buckets["first"][1].SubnetID)
}

func TestAnalyzeIsIdempotent(t *testing.T) {
	regions := []model.Region{{Name: "r"}}
	records := seed("r",
		fixture{id: "a", cidr: "10.0.0.0/28", addresses: hosts(t, "10.0.0.0/28", 2, 10)},
		fixture{id: "b", cidr: "10.0.1.0/24", addresses: hosts(t, "10.0.1.0/24", 2, 10)},
	)

	svc := NewService(zap.NewNop())
	first := svc.Analyze(regions, records, model.DefaultThreshold)
	second := svc.Analyze(regions, records, model.DefaultThreshold)

	assert.Equal(t, first, second)
}
