package requests

type CreateAppointment struct {
	PatientName       string  `json:"patient_name" validate:"required,max=120"`
	ContactNumber     string  `json:"contact_number" validate:"required,max=20"`
	Disease           string  `json:"disease" validate:"max=200"`
	Date              string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time              string  `json:"time" validate:"required"`
	MeetingLink       string  `json:"meeting_link" validate:"omitempty,url"`
	AlreadyRegistered bool    `json:"already_registered"`
	SlotIDs           []int64 `json:"slot_ids"`
}

// UpdateAppointment carries a partial field merge. Nil fields are left
// untouched on the stored appointment.
type UpdateAppointment struct {
	PatientName   *string `json:"patient_name" validate:"omitempty,max=120"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,max=20"`
	Disease       *string `json:"disease" validate:"omitempty,max=200"`
	Date          *string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time          *string `json:"time"`
	Status        *string `json:"status" validate:"omitempty,oneof=Upcoming InProgress Completed Cancelled NoShow"`
	MeetingLink   *string `json:"meeting_link" validate:"omitempty,url"`
}

type MoveAppointment struct {
	To string `json:"to" validate:"required,oneof=today future past"`
}

type SearchInput struct {
	Input string `json:"input" validate:"max=200"`
}
