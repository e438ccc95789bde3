package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Appointment messages
	GetAppointmentSuccessMessage    = "appointments retrieved successfully"
	CreateAppointmentSuccessMessage = "appointment created successfully"
	UpdateAppointmentSuccessMessage = "appointment updated successfully"
	DeleteAppointmentSuccessMessage = "appointment deleted successfully"
	MoveAppointmentSuccessMessage   = "appointment moved successfully"
	SearchAcceptedMessage           = "search input accepted"
)
