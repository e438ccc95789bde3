package models

// Status is the internal appointment status vocabulary. The clinic backend
// speaks its own vocabulary; translation happens at the API boundary only.
type Status string

const (
	StatusUpcoming   Status = "Upcoming"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusNoShow     Status = "NoShow"
)

// Partition identifies one of the three date-partitioned appointment views.
// Membership is derived from the scheduled date at read time, never stored.
type Partition string

const (
	PartitionToday  Partition = "today"
	PartitionFuture Partition = "future"
	PartitionPast   Partition = "past"
)

func (p Partition) Valid() bool {
	return p == PartitionToday || p == PartitionFuture || p == PartitionPast
}

// CanonicalStatus is the status an appointment carries after being moved into
// the partition: today runs, future waits, past is done.
func (p Partition) CanonicalStatus() Status {
	switch p {
	case PartitionToday:
		return StatusInProgress
	case PartitionPast:
		return StatusCompleted
	default:
		return StatusUpcoming
	}
}

type BookedSlot struct {
	ID       int64  `json:"id"`
	SlotDate string `json:"slot_date"`
	SlotTime string `json:"slot_time"`
}

type Appointment struct {
	ID                int64        `json:"id"`
	PatientName       string       `json:"patient_name"`
	ContactNumber     string       `json:"contact_number"`
	Disease           string       `json:"disease"`
	ScheduledDate     string       `json:"scheduled_date"`
	ScheduledTime     string       `json:"scheduled_time"`
	Status            Status       `json:"status"`
	MeetingLink       string       `json:"meeting_link,omitempty"`
	AlreadyRegistered bool         `json:"already_registered,omitempty"`
	BookedSlots       []BookedSlot `json:"booked_slots,omitempty"`
}

// Pagination is the single internal pagination shape. Both backend response
// shapes (meta object and legacy flat counters) normalize into it.
type Pagination struct {
	Total       int `json:"total"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	PageSize    int `json:"page_size"`
}

// AppointmentPage is one fetched page of a partitioned view, as cached and as
// applied to the store.
type AppointmentPage struct {
	Appointments []Appointment `json:"appointments"`
	Pagination   Pagination    `json:"pagination"`
}

// MutationKind enumerates the optimistic local mutations.
type MutationKind string

const (
	MutationCreate MutationKind = "create"
	MutationUpdate MutationKind = "update"
	MutationDelete MutationKind = "delete"
	MutationMove   MutationKind = "move"
)

// PendingMutation exists from the moment an optimistic local change is applied
// until the clinic backend acknowledges or rejects it.
type PendingMutation struct {
	AppointmentID int64
	Kind          MutationKind
	From          Partition
	To            Partition
}
