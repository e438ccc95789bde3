package appointments

import (
	"clinicsync-service/internal/app/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func seededStore() *Store {
	store := NewStore()
	store.Replace(models.PartitionToday, []models.Appointment{
		{ID: 1, PatientName: "John Doe", Status: models.StatusInProgress},
		{ID: 2, PatientName: "Jane Roe", Status: models.StatusInProgress},
	})
	store.Replace(models.PartitionFuture, []models.Appointment{
		{ID: 3, PatientName: "Alex Smith", Status: models.StatusUpcoming},
	})
	store.Replace(models.PartitionPast, []models.Appointment{
		{ID: 4, PatientName: "Sam Lee", Status: models.StatusCompleted},
	})
	return store
}

func totalCount(store *Store) int {
	total := 0
	for _, count := range store.Counts() {
		total += count
	}
	return total
}

func TestStoreCountsAreDerived(t *testing.T) {
	store := seededStore()

	counts := store.Counts()
	assert.Equal(t, 2, counts[models.PartitionToday])
	assert.Equal(t, 1, counts[models.PartitionFuture])
	assert.Equal(t, 1, counts[models.PartitionPast])

	store.Remove(2)
	assert.Equal(t, 1, store.Counts()[models.PartitionToday])
}

func TestStoreMovePreservesTotalCount(t *testing.T) {
	store := seededStore()
	before := totalCount(store)

	moved, ok := store.Move(3, models.PartitionToday)
	assert.True(t, ok)
	assert.Equal(t, before, totalCount(store), "a move never changes the combined count")
	assert.Equal(t, models.StatusInProgress, moved.Status, "destination assigns its canonical status")

	partition, _, found := store.Find(3)
	assert.True(t, found)
	assert.Equal(t, models.PartitionToday, partition)
	assert.Empty(t, store.List(models.PartitionFuture))
}

func TestStoreMoveCanonicalStatuses(t *testing.T) {
	store := seededStore()

	moved, _ := store.Move(1, models.PartitionPast)
	assert.Equal(t, models.StatusCompleted, moved.Status)

	moved, _ = store.Move(1, models.PartitionFuture)
	assert.Equal(t, models.StatusUpcoming, moved.Status)
}

func TestStoreMoveUnknownID(t *testing.T) {
	store := seededStore()
	_, ok := store.Move(99, models.PartitionToday)
	assert.False(t, ok)
}

func TestStoreRemoveDeletesFromAllPartitions(t *testing.T) {
	store := seededStore()

	assert.True(t, store.Remove(4))
	_, _, found := store.Find(4)
	assert.False(t, found)

	assert.False(t, store.Remove(4), "second delete is a no-op")
}

func TestStoreApplyMergesInPlace(t *testing.T) {
	store := seededStore()

	partition, ok := store.Apply(1, func(appointment *models.Appointment) {
		appointment.Disease = "Migraine"
		appointment.ContactNumber = "555-0100"
	})
	assert.True(t, ok)
	assert.Equal(t, models.PartitionToday, partition)

	_, appointment, _ := store.Find(1)
	assert.Equal(t, "Migraine", appointment.Disease)
	assert.Equal(t, "555-0100", appointment.ContactNumber)
	assert.Equal(t, "John Doe", appointment.PatientName, "untouched fields survive the merge")
}

func TestStoreApplyUnknownID(t *testing.T) {
	store := seededStore()
	_, ok := store.Apply(99, func(appointment *models.Appointment) {
		appointment.Disease = "x"
	})
	assert.False(t, ok)
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	store := seededStore()

	snapshot := store.Snapshot()
	snapshot.Partitions[models.PartitionToday][0].PatientName = "Mutated"

	_, appointment, _ := store.Find(1)
	assert.Equal(t, "John Doe", appointment.PatientName)
}

func TestStoreSubscribersSeeEveryChange(t *testing.T) {
	store := seededStore()

	var notified []Snapshot
	store.Subscribe(func(snapshot Snapshot) {
		notified = append(notified, snapshot)
	})

	store.Insert(models.PartitionFuture, models.Appointment{ID: 10})
	store.Remove(10)

	assert.Len(t, notified, 2)
	assert.Equal(t, 2, notified[0].Counts[models.PartitionFuture])
	assert.Equal(t, 1, notified[1].Counts[models.PartitionFuture])
}

func TestStorePendingLifecycle(t *testing.T) {
	store := seededStore()

	store.TrackPending(models.PendingMutation{AppointmentID: 1, Kind: models.MutationUpdate})
	store.TrackPending(models.PendingMutation{AppointmentID: 2, Kind: models.MutationDelete})
	assert.Equal(t, 2, store.PendingCount())

	store.ResolvePending(1)
	assert.Equal(t, 1, store.PendingCount())

	store.ResolvePending(1)
	assert.Equal(t, 1, store.PendingCount(), "resolving twice is harmless")
}
