package responses

type Appointment struct {
	ID                  string `json:"id"`
	FirstName           string `json:"firstName"`
	LastName            string `json:"lastName"`
	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ServiceType         string `json:"serviceType"`
	PreferredDate       string `json:"preferredDate"`
	PreferredTime       string `json:"preferredTime"`
	SessionType         string `json:"sessionType"`
	ReasonForCounseling string `json:"reasonForCounseling"`
	IsEmergency         bool   `json:"isEmergency"`
	AdditionalInfo      string `json:"additionalInfo,omitempty"`
	Status              string `json:"status"`
	CancellationReason  string `json:"cancellationReason,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
}

// IsCancellable reports whether the appointment can still be rescheduled or cancelled.
func (a Appointment) IsCancellable() bool {
	return a.Status != "cancelled" && a.Status != "completed"
}

type AppointmentResult struct {
	Envelope
	Appointment *Appointment `json:"appointment,omitempty"`
}

type AppointmentList struct {
	Envelope
	Appointments []Appointment `json:"appointments"`
}
