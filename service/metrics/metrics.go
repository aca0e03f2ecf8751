package metrics

import (
	"fmt"
	"time"

	"github.com/elC0mpa/ipam-doctor/model"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultError   = "error"
)

// API call names used as the "call" label
const (
	CallSearchSubnets  = "search_subnets"
	CallGetSubnet      = "get_subnet"
	CallListPrivateIPs = "list_private_ips"
)

// Metrics holds the collectors of one run. Each run gets its own registry so
// repeated runs in one process never share counters. A nil *Metrics records
// nothing.
type Metrics struct {
	registry *prometheus.Registry

	apiCalls          *prometheus.CounterVec
	subnetsDiscovered *prometheus.GaugeVec
	subnetsSkipped    *prometheus.CounterVec
	utilization       *prometheus.GaugeVec
	duration          prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		apiCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipam_api_calls_total",
				Help: "Provider API calls made during collection.",
			},
			[]string{"region", "call", "result"},
		),
		subnetsDiscovered: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ipam_subnets_discovered",
				Help: "Subnets found by discovery.",
			},
			[]string{"region"},
		),
		subnetsSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ipam_subnets_skipped_total",
				Help: "Subnets left out of the analysis.",
			},
			[]string{"reason"},
		),
		utilization: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ipam_subnet_utilization_percent",
				Help: "Utilization of subnets at or above the threshold.",
			},
			[]string{"region", "subnet", "id"},
		),
		duration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ipam_collection_duration_seconds",
				Help: "Wall time of the last collection run.",
			},
		),
	}

	m.registry.MustRegister(
		m.apiCalls,
		m.subnetsDiscovered,
		m.subnetsSkipped,
		m.utilization,
		m.duration,
	)

	return m
}

// ObserveCall counts one provider API call
func (m *Metrics) ObserveCall(region, call string, err error) {
	if m == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	m.apiCalls.WithLabelValues(region, call, result).Inc()
}

func (m *Metrics) SetDiscovered(region string, count int) {
	if m == nil {
		return
	}
	m.subnetsDiscovered.WithLabelValues(region).Set(float64(count))
}

// RecordReport exports the skip counts and the utilization of every
// reported subnet
func (m *Metrics) RecordReport(report model.AnalysisReport) {
	if m == nil {
		return
	}
	for reason, count := range report.Skipped {
		m.subnetsSkipped.WithLabelValues(string(reason)).Add(float64(count))
	}

	for _, region := range report.Index.Regions {
		for _, result := range report.Index.Buckets[region] {
			m.utilization.WithLabelValues(region, result.SubnetName, result.SubnetID).Set(result.Utilization)
		}
	}
}

func (m *Metrics) SetDuration(d time.Duration) {
	if m == nil {
		return
	}
	m.duration.Set(d.Seconds())
}

// Registry exposes the run's registry for gathering
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the collected metrics in the node-exporter textfile format
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
