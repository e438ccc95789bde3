package appointments

import (
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/pkg/constvars"
	"strings"
)

var serverToInternal = map[string]models.Status{
	constvars.ServerStatusScheduled:  models.StatusUpcoming,
	constvars.ServerStatusInProgress: models.StatusInProgress,
	constvars.ServerStatusCompleted:  models.StatusCompleted,
	constvars.ServerStatusCancelled:  models.StatusCancelled,
	constvars.ServerStatusNoShow:     models.StatusNoShow,
}

var internalToServer = map[models.Status]string{
	models.StatusUpcoming:   constvars.ServerStatusScheduled,
	models.StatusInProgress: constvars.ServerStatusInProgress,
	models.StatusCompleted:  constvars.ServerStatusCompleted,
	models.StatusCancelled:  constvars.ServerStatusCancelled,
	models.StatusNoShow:     constvars.ServerStatusNoShow,
}

// ToInternalStatus translates the clinic backend's status vocabulary into the
// internal one. Input is case-insensitive; anything unrecognized maps to
// Upcoming so the function is total.
func ToInternalStatus(serverStatus string) models.Status {
	if status, ok := serverToInternal[strings.ToLower(strings.TrimSpace(serverStatus))]; ok {
		return status
	}
	return models.StatusUpcoming
}

// ToExternalStatus translates an internal status back into the backend's
// vocabulary. Unrecognized values map to the backend's scheduled state.
func ToExternalStatus(status models.Status) string {
	if serverStatus, ok := internalToServer[status]; ok {
		return serverStatus
	}
	return constvars.ServerStatusScheduled
}
