package contracts

import (
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/pkg/dto/requests"
	"clinicsync-service/internal/pkg/dto/responses"
	"context"
)

type AppointmentUsecase interface {
	List(ctx context.Context, partition models.Partition, query *requests.ListQuery) (*responses.AppointmentList, *models.Pagination, error)
	SearchInput(ctx context.Context, partition models.Partition, input string) (*responses.SearchStatus, error)
	Create(ctx context.Context, request *requests.CreateAppointment) (*models.Appointment, error)
	Update(ctx context.Context, appointmentID int64, request *requests.UpdateAppointment) (*models.Appointment, error)
	Delete(ctx context.Context, appointmentID int64) error
	Move(ctx context.Context, appointmentID int64, request *requests.MoveAppointment) (*models.Appointment, error)
}
