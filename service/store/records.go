package store

import (
	"sync"

	"github.com/elC0mpa/ipam-doctor/model"
)

// Records holds the subnet records of every region. Each region has its own
// shard and lock, so collectors of different regions never contend.
type Records struct {
	mu     sync.RWMutex
	shards map[string]*shard
}

type shard struct {
	mu      sync.Mutex
	order   []string
	records map[string]*model.SubnetRecord
}

// New returns an empty store
func New() *Records {
	return &Records{
		shards: map[string]*shard{},
	}
}

// Seed creates one empty record per reference, in discovery order.
// References repeated in refs are seeded once.
func (r *Records) Seed(region string, refs []model.SubnetReference) {
	s := r.shardFor(region)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, ref := range refs {
		if _, ok := s.records[ref.ID]; ok {
			continue
		}
		s.order = append(s.order, ref.ID)
		s.records[ref.ID] = &model.SubnetRecord{Region: region, ID: ref.ID}
	}
}

// SetDetails stores the subnet metadata
func (r *Records) SetDetails(region, subnetID string, details *model.SubnetDetails) {
	r.update(region, subnetID, func(rec *model.SubnetRecord) {
		rec.Details = details
	})
}

// SetAddresses marks the address listing as fetched. The addresses are only
// stored when there is at least one.
func (r *Records) SetAddresses(region, subnetID string, addresses []model.PrivateAddress) {
	r.update(region, subnetID, func(rec *model.SubnetRecord) {
		rec.AddressesFetched = true
		if len(addresses) > 0 {
			rec.Addresses = addresses
		}
	})
}

// SetError records a failed fetch on the field the call would have filled
func (r *Records) SetError(region, subnetID string, call model.FetchCall, err error) {
	r.update(region, subnetID, func(rec *model.SubnetRecord) {
		switch call {
		case model.FetchDetails:
			rec.DetailsErr = err
		case model.FetchAddresses:
			rec.AddressesErr = err
		}
	})
}

// Snapshot returns copies of a region's records in discovery order
func (r *Records) Snapshot(region string) []model.SubnetRecord {
	r.mu.RLock()
	s, ok := r.shards[region]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.SubnetRecord, 0, len(s.order))
	for _, id := range s.order {
		rec := *s.records[id]
		if rec.Addresses != nil {
			rec.Addresses = append([]model.PrivateAddress(nil), rec.Addresses...)
		}
		out = append(out, rec)
	}
	return out
}

// Len returns the number of records of a region
func (r *Records) Len(region string) int {
	r.mu.RLock()
	s, ok := r.shards[region]
	r.mu.RUnlock()
	if !ok {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

func (r *Records) shardFor(region string) *shard {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.shards[region]
	if !ok {
		s = &shard{records: map[string]*model.SubnetRecord{}}
		r.shards[region] = s
	}
	return s
}

// update applies fn to an existing record. Writes for unknown subnets are
// dropped.
func (r *Records) update(region, subnetID string, fn func(*model.SubnetRecord)) {
	r.mu.RLock()
	s, ok := r.shards[region]
	r.mu.RUnlock()
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if rec, ok := s.records[subnetID]; ok {
		fn(rec)
	}
}
