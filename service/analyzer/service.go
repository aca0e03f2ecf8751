package analyzer

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/elC0mpa/ipam-doctor/service/store"
	"go.uber.org/zap"
)

func NewService(logger *zap.Logger) *service {
	return &service{logger: logger}
}

// Analyze computes the utilization of every complete record and keeps the
// subnets at or above threshold. Regions are visited in the given order and
// records in discovery order. It only reads the store, so it can be run any
// number of times with the same result.
func (s *service) Analyze(regions []model.Region, records *store.Records, threshold float64) model.AnalysisReport {
	report := model.AnalysisReport{
		Index:     model.NewHighUtilizationIndex(),
		Threshold: threshold,
		Skipped:   map[model.SkipReason]int{},
	}

	for _, region := range regions {
		for _, rec := range records.Snapshot(region.Name) {
			if reason, skip := skipReason(rec); skip {
				s.skip(&report, rec, reason, nil)
				continue
			}

			result, err := Evaluate(region.Name, *rec.Details, rec.Addresses)
			if err != nil {
				s.skip(&report, rec, model.SkipInvalidCIDR, err)
				continue
			}

			report.Evaluated++
			if result.Utilization >= threshold {
				report.Index.Add(result)
			}
		}
	}

	return report
}

func (s *service) skip(report *model.AnalysisReport, rec model.SubnetRecord, reason model.SkipReason, err error) {
	report.Skipped[reason]++

	fields := []zap.Field{
		zap.String("region", rec.Region),
		zap.String("subnet", rec.ID),
		zap.String("reason", string(reason)),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	s.logger.Info("subnet left out of analysis", fields...)
}

// skipReason classifies an incomplete record
func skipReason(rec model.SubnetRecord) (model.SkipReason, bool) {
	switch {
	case rec.Details == nil:
		return model.SkipMissingDetails, true
	case len(rec.Addresses) > 0:
		return "", false
	case rec.AddressesFetched && rec.AddressesErr == nil:
		return model.SkipNoAddresses, true
	default:
		return model.SkipMissingAddresses, true
	}
}

// Evaluate computes the utilization of one subnet. The network and gateway
// addresses are always active. Listed addresses are added on top, except
// those equal to an address already counted. The broadcast address is only
// counted when it is listed. Entries without an address are always counted.
func Evaluate(region string, details model.SubnetDetails, addresses []model.PrivateAddress) (model.UtilizationResult, error) {
	prefix, err := netip.ParsePrefix(strings.TrimSpace(details.CIDR))
	if err != nil {
		return model.UtilizationResult{}, fmt.Errorf("failed to parse cidr %q: %w", details.CIDR, err)
	}
	if !prefix.Addr().Is4() {
		return model.UtilizationResult{}, fmt.Errorf("cidr %q is not IPv4", details.CIDR)
	}
	prefix = prefix.Masked()

	totalSize := uint64(1) << (32 - prefix.Bits())

	var active []model.ActiveAddress
	seen := map[netip.Addr]bool{}

	network := prefix.Addr()
	active = append(active, model.ActiveAddress{Address: network.String(), Label: labelNetwork, Reserved: true})
	seen[network] = true

	if gateway := network.Next(); gateway.IsValid() && prefix.Contains(gateway) {
		active = append(active, model.ActiveAddress{Address: gateway.String(), Label: labelGateway, Reserved: true})
		seen[gateway] = true
	}

	for _, a := range addresses {
		if addr, err := netip.ParseAddr(strings.TrimSpace(a.Address)); err == nil {
			if seen[addr] {
				continue
			}
			seen[addr] = true
		}
		active = append(active, model.ActiveAddress{Address: a.Address, Label: a.Label})
	}

	name := details.Name
	if name == "" {
		name = details.ID
	}

	return model.UtilizationResult{
		Region:          region,
		SubnetID:        details.ID,
		SubnetName:      name,
		CIDR:            prefix.String(),
		TotalSize:       totalSize,
		ActiveCount:     len(active),
		Utilization:     float64(len(active)) / float64(totalSize) * 100,
		ActiveAddresses: active,
	}, nil
}
