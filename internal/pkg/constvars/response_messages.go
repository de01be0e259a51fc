package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthCheckSuccessMessage = "website and backend are reachable"

	// Form messages
	AppointmentSubmittedDefaultMessage = "Thank you! Your appointment request has been submitted successfully. We will contact you within 24 hours to confirm your appointment."
	ContactSentDefaultMessage          = "Thank you for your message! We will respond within 24 hours."

	// Account messages
	LoginSuccessMessage                 = "Welcome back! You are now logged in."
	RegisterSuccessMessage              = "Your account has been created."
	LogoutSuccessMessage                = "You have been logged out."
	UpdateProfileSuccessMessage         = "Your profile has been updated."
	RescheduleAppointmentSuccessMessage = "Your appointment has been rescheduled."
	CancelAppointmentSuccessMessage     = "Your appointment has been cancelled."
)
