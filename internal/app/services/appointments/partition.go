package appointments

import (
	"clinicsync-service/internal/app/models"
	"time"
)

// Classify places an appointment date into exactly one partition relative to
// the reference date. Dates compare as calendar dates only; the time of day
// and zone of either argument are ignored. Classification is deliberately
// unstable across midnight: it is re-derived on every read instead of being
// stored, so no background re-partitioning is needed.
func Classify(appointmentDate, referenceDate time.Time) models.Partition {
	ay, am, ad := appointmentDate.Date()
	ry, rm, rd := referenceDate.Date()

	appointment := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	reference := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)

	switch {
	case appointment.Equal(reference):
		return models.PartitionToday
	case appointment.After(reference):
		return models.PartitionFuture
	default:
		return models.PartitionPast
	}
}
