package appointments

import (
	"clinicsync-service/internal/app/models"
	"sync"
)

// Snapshot is a point-in-time copy of the three partitions handed to
// subscribers and read-model consumers.
type Snapshot struct {
	Partitions map[models.Partition][]models.Appointment
	Counts     map[models.Partition]int
}

// Store is the single authoritative local read model: three date-partitioned
// collections plus the optimistic mutations applied against them. Every
// consumer observes the same store instance instead of re-deriving its own
// partition set. Partition counts are always derived from the slices, never
// stored.
type Store struct {
	mu          sync.RWMutex
	partitions  map[models.Partition][]models.Appointment
	pending     map[int64]models.PendingMutation
	subscribers []func(Snapshot)
}

func NewStore() *Store {
	return &Store{
		partitions: map[models.Partition][]models.Appointment{
			models.PartitionToday:  {},
			models.PartitionFuture: {},
			models.PartitionPast:   {},
		},
		pending: make(map[int64]models.PendingMutation),
	}
}

// Subscribe registers a callback invoked after every store change with a
// fresh snapshot.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) snapshotLocked() Snapshot {
	snapshot := Snapshot{
		Partitions: make(map[models.Partition][]models.Appointment, len(s.partitions)),
		Counts:     make(map[models.Partition]int, len(s.partitions)),
	}
	for partition, items := range s.partitions {
		copied := make([]models.Appointment, len(items))
		copy(copied, items)
		snapshot.Partitions[partition] = copied
		snapshot.Counts[partition] = len(items)
	}
	return snapshot
}

func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

// Snapshot returns a copy of the whole read model.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// List returns a copy of one partition.
func (s *Store) List(partition models.Partition) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := s.partitions[partition]
	copied := make([]models.Appointment, len(items))
	copy(copied, items)
	return copied
}

// Counts returns the derived per-partition sizes.
func (s *Store) Counts() map[models.Partition]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[models.Partition]int, len(s.partitions))
	for partition, items := range s.partitions {
		counts[partition] = len(items)
	}
	return counts
}

// Find locates an appointment id in whichever partition currently holds it.
func (s *Store) Find(appointmentID int64) (models.Partition, models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for partition, items := range s.partitions {
		for _, appointment := range items {
			if appointment.ID == appointmentID {
				return partition, appointment, true
			}
		}
	}
	return "", models.Appointment{}, false
}

// Replace swaps one partition's contents wholesale, as happens on fetch
// completion. Field-level conflicts with in-flight mutations resolve
// last-write-wins by object overwrite.
func (s *Store) Replace(partition models.Partition, items []models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]models.Appointment, len(items))
	copy(copied, items)
	s.partitions[partition] = copied
	s.notifyLocked()
}

// Insert appends a server-confirmed appointment to the target partition.
func (s *Store) Insert(partition models.Partition, appointment models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.partitions[partition] = append(s.partitions[partition], appointment)
	s.notifyLocked()
}

// Apply performs an in-place field merge on the matching entry in whichever
// partition holds it. It reports the partition touched and whether the id was
// found.
func (s *Store) Apply(appointmentID int64, mutate func(*models.Appointment)) (models.Partition, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for partition, items := range s.partitions {
		for i := range items {
			if items[i].ID == appointmentID {
				mutate(&items[i])
				s.notifyLocked()
				return partition, true
			}
		}
	}
	return "", false
}

// Remove deletes the id from all three partitions.
func (s *Store) Remove(appointmentID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := false
	for partition, items := range s.partitions {
		filtered := items[:0]
		for _, appointment := range items {
			if appointment.ID == appointmentID {
				removed = true
				continue
			}
			filtered = append(filtered, appointment)
		}
		s.partitions[partition] = filtered
	}
	if removed {
		s.notifyLocked()
	}
	return removed
}

// Move removes the appointment from its source partition and appends it to
// the destination with the destination's canonical status, as one atomic
// local step.
func (s *Store) Move(appointmentID int64, to models.Partition) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for partition, items := range s.partitions {
		for i, appointment := range items {
			if appointment.ID != appointmentID {
				continue
			}
			s.partitions[partition] = append(items[:i:i], items[i+1:]...)
			appointment.Status = to.CanonicalStatus()
			s.partitions[to] = append(s.partitions[to], appointment)
			s.notifyLocked()
			return appointment, true
		}
	}
	return models.Appointment{}, false
}

// TrackPending records an optimistic mutation awaiting backend acknowledgment.
func (s *Store) TrackPending(mutation models.PendingMutation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending[mutation.AppointmentID] = mutation
}

// ResolvePending clears the pending record once the backend acknowledged or
// rejected the mutation.
func (s *Store) ResolvePending(appointmentID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, appointmentID)
}

// PendingCount reports how many optimistic mutations are still awaiting the
// backend.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pending)
}
