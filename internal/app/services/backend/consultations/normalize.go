package consultations

import (
	"clinicsync-service/internal/app/models"
	"clinicsync-service/internal/app/services/appointments"
)

// The clinic backend has shipped two response shapes for the consultation
// list: the current one nests counters under "meta", the legacy one carries
// them flat on the envelope. Both are accepted here and normalized exactly
// once, at the API boundary; everything past this file sees only
// models.Pagination.

type listMeta struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

type listEnvelope struct {
	Data []consultationItem `json:"data"`
	Meta *listMeta          `json:"meta"`

	// Legacy flat counters.
	TotalCount  *int `json:"total_count"`
	CurrentPage *int `json:"current_page"`
	TotalPages  *int `json:"total_pages"`
}

type bookedSlotItem struct {
	ID       int64  `json:"id"`
	SlotDate string `json:"slot_date"`
	SlotTime string `json:"slot_time"`
}

type consultationItem struct {
	ID                int64            `json:"id"`
	PatientName       string           `json:"patient_name"`
	ContactNumber     string           `json:"contact_number"`
	Disease           string           `json:"disease"`
	Date              string           `json:"date"`
	Time              string           `json:"time"`
	Status            string           `json:"status"`
	MeetingLink       string           `json:"meeting_link"`
	AlreadyRegistered bool             `json:"already_registered"`
	BookedSlots       []bookedSlotItem `json:"booked_slots"`
}

func (it consultationItem) toModel() models.Appointment {
	slots := make([]models.BookedSlot, 0, len(it.BookedSlots))
	for _, slot := range it.BookedSlots {
		slots = append(slots, models.BookedSlot{
			ID:       slot.ID,
			SlotDate: slot.SlotDate,
			SlotTime: slot.SlotTime,
		})
	}
	return models.Appointment{
		ID:                it.ID,
		PatientName:       it.PatientName,
		ContactNumber:     it.ContactNumber,
		Disease:           it.Disease,
		ScheduledDate:     it.Date,
		ScheduledTime:     it.Time,
		Status:            appointments.ToInternalStatus(it.Status),
		MeetingLink:       it.MeetingLink,
		AlreadyRegistered: it.AlreadyRegistered,
		BookedSlots:       slots,
	}
}

func (e *listEnvelope) toPage(pageSize int) *models.AppointmentPage {
	page := &models.AppointmentPage{
		Appointments: make([]models.Appointment, 0, len(e.Data)),
		Pagination:   e.normalizePagination(pageSize),
	}
	for _, item := range e.Data {
		page.Appointments = append(page.Appointments, item.toModel())
	}
	return page
}

func (e *listEnvelope) normalizePagination(pageSize int) models.Pagination {
	pagination := models.Pagination{
		CurrentPage: 1,
		TotalPages:  1,
		PageSize:    pageSize,
	}

	switch {
	case e.Meta != nil:
		pagination.Total = e.Meta.Total
		pagination.CurrentPage = e.Meta.CurrentPage
		pagination.TotalPages = e.Meta.TotalPages
	default:
		if e.TotalCount != nil {
			pagination.Total = *e.TotalCount
		}
		if e.CurrentPage != nil {
			pagination.CurrentPage = *e.CurrentPage
		}
		if e.TotalPages != nil {
			pagination.TotalPages = *e.TotalPages
		}
	}

	if pagination.CurrentPage < 1 {
		pagination.CurrentPage = 1
	}
	if pagination.TotalPages < 1 {
		pagination.TotalPages = 1
	}
	return pagination
}
