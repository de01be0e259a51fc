package requests

// AppointmentRequest is the booking form submitted to POST /appointments.
type AppointmentRequest struct {
	FirstName             string `json:"firstName"`
	LastName              string `json:"lastName"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	DateOfBirth           string `json:"dateOfBirth"`
	ServiceType           string `json:"serviceType" validate:"oneof=individual-counseling couples-counseling family-counseling group-therapy christian-counseling crisis-intervention"`
	PreferredDate         string `json:"preferredDate" validate:"datetime=2006-01-02,notpast"`
	PreferredTime         string `json:"preferredTime" validate:"hhmm,slot"`
	SessionType           string `json:"sessionType" validate:"oneof=in-person video-call phone-call"`
	HasInsurance          bool   `json:"hasInsurance"`
	InsuranceProvider     string `json:"insuranceProvider,omitempty"`
	PolicyNumber          string `json:"policyNumber,omitempty"`
	IsEmergency           bool   `json:"isEmergency"`
	EmergencyContactName  string `json:"emergencyContactName,omitempty"`
	EmergencyContactPhone string `json:"emergencyContactPhone,omitempty"`
	ReasonForCounseling   string `json:"reasonForCounseling" validate:"oneof=anxiety depression relationship-issues trauma grief stress addiction family-conflict spiritual other"`
	PreviousCounseling    bool   `json:"previousCounseling"`
	Medications           string `json:"medications"`
	AdditionalInfo        string `json:"additionalInfo,omitempty"`
}

// Payload returns the body sent to the API. Insurance details are dropped
// unless the visitor said they have insurance.
func (r AppointmentRequest) Payload() AppointmentRequest {
	if !r.HasInsurance {
		r.InsuranceProvider = ""
		r.PolicyNumber = ""
	}
	return r
}

type UpdateAppointmentRequest struct {
	PreferredDate  string `json:"preferredDate,omitempty" validate:"omitempty,datetime=2006-01-02,notpast"`
	PreferredTime  string `json:"preferredTime,omitempty" validate:"omitempty,hhmm,slot"`
	SessionType    string `json:"sessionType,omitempty" validate:"omitempty,oneof=in-person video-call phone-call"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

type CancelAppointmentRequest struct {
	Reason string `json:"reason,omitempty" validate:"max=500"`
}
