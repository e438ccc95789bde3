package consultations

import (
	"clinicsync-service/internal/app/models"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

const metaShapePayload = `{
	"data": [
		{"id": 1, "patient_name": "John Doe", "contact_number": "555-0100", "disease": "Migraine",
		 "date": "2024-06-15", "time": "10:00", "status": "in_progress",
		 "booked_slots": [{"id": 7, "slot_date": "2024-06-15", "slot_time": "10:00"}]},
		{"id": 2, "patient_name": "Jane Roe", "date": "2024-06-15", "time": "11:00", "status": "scheduled"}
	],
	"meta": {"total": 12, "current_page": 2, "total_pages": 3}
}`

const legacyShapePayload = `{
	"data": [
		{"id": 1, "patient_name": "John Doe", "contact_number": "555-0100", "disease": "Migraine",
		 "date": "2024-06-15", "time": "10:00", "status": "in_progress",
		 "booked_slots": [{"id": 7, "slot_date": "2024-06-15", "slot_time": "10:00"}]},
		{"id": 2, "patient_name": "Jane Roe", "date": "2024-06-15", "time": "11:00", "status": "scheduled"}
	],
	"total_count": 12, "current_page": 2, "total_pages": 3
}`

func decodeEnvelope(t *testing.T, payload string) *listEnvelope {
	t.Helper()
	envelope := new(listEnvelope)
	if err := json.Unmarshal([]byte(payload), envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return envelope
}

func TestBothResponseShapesNormalizeIdentically(t *testing.T) {
	metaPage := decodeEnvelope(t, metaShapePayload).toPage(10)
	legacyPage := decodeEnvelope(t, legacyShapePayload).toPage(10)

	assert.Equal(t, metaPage, legacyPage)

	assert.Equal(t, models.Pagination{Total: 12, CurrentPage: 2, TotalPages: 3, PageSize: 10}, metaPage.Pagination)
	assert.Len(t, metaPage.Appointments, 2)
}

func TestToPageTranslatesStatusAndSlots(t *testing.T) {
	page := decodeEnvelope(t, metaShapePayload).toPage(10)

	first := page.Appointments[0]
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, models.StatusInProgress, first.Status)
	assert.Equal(t, "2024-06-15", first.ScheduledDate)
	assert.Equal(t, "10:00", first.ScheduledTime)
	assert.Equal(t, []models.BookedSlot{{ID: 7, SlotDate: "2024-06-15", SlotTime: "10:00"}}, first.BookedSlots)

	second := page.Appointments[1]
	assert.Equal(t, models.StatusUpcoming, second.Status)
	assert.Empty(t, second.BookedSlots)
}

func TestNormalizePaginationDefaults(t *testing.T) {
	testCases := []struct {
		name     string
		payload  string
		expected models.Pagination
	}{
		{
			name:     "no counters at all",
			payload:  `{"data": []}`,
			expected: models.Pagination{Total: 0, CurrentPage: 1, TotalPages: 1, PageSize: 10},
		},
		{
			name:     "meta takes precedence over flat counters",
			payload:  `{"data": [], "meta": {"total": 5, "current_page": 1, "total_pages": 1}, "total_count": 99}`,
			expected: models.Pagination{Total: 5, CurrentPage: 1, TotalPages: 1, PageSize: 10},
		},
		{
			name:     "zero pages clamps to one",
			payload:  `{"data": [], "meta": {"total": 0, "current_page": 0, "total_pages": 0}}`,
			expected: models.Pagination{Total: 0, CurrentPage: 1, TotalPages: 1, PageSize: 10},
		},
		{
			name:     "partial legacy counters",
			payload:  `{"data": [], "total_count": 7}`,
			expected: models.Pagination{Total: 7, CurrentPage: 1, TotalPages: 1, PageSize: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			envelope := decodeEnvelope(t, tc.payload)
			assert.Equal(t, tc.expected, envelope.normalizePagination(10))
		})
	}
}
