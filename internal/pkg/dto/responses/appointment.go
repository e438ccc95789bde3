package responses

import "clinicsync-service/internal/app/models"

// AppointmentList is the partitioned read-model view served to the dashboard.
// Counts are derived projections over the three partitions, recomputed on
// every store change.
type AppointmentList struct {
	Partition    models.Partition     `json:"partition"`
	Appointments []models.Appointment `json:"appointments"`
	Counts       map[string]int       `json:"counts"`
}

// SearchStatus reports the debounce state after a search-input edit.
type SearchStatus struct {
	Pending   bool   `json:"pending"`
	Committed string `json:"committed"`
}
