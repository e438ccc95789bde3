package contracts

import (
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/pkg/dto/requests"
	"context"
)

// ConsultationClient talks to the remote clinic backend's consultation
// collection. Implementations attach the bearer credential and normalize both
// backend pagination shapes into models.Pagination.
type ConsultationClient interface {
	List(ctx context.Context, query *requests.ConsultationQuery) (*models.AppointmentPage, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID int64, status models.Status) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
}
