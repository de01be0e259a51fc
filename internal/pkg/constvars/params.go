package constvars

const (
	URLParamAppointmentID = "appointment_id"
)
