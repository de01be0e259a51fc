package utils

import (
	"net/http"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"strings"
)

func BuildAppointmentRequest(r *http.Request) *requests.AppointmentRequest {
	request := &requests.AppointmentRequest{
		FirstName:             r.FormValue("firstName"),
		LastName:              r.FormValue("lastName"),
		Email:                 r.FormValue("email"),
		Phone:                 r.FormValue("phone"),
		DateOfBirth:           r.FormValue("dateOfBirth"),
		ServiceType:           r.FormValue("serviceType"),
		PreferredDate:         r.FormValue("preferredDate"),
		PreferredTime:         r.FormValue("preferredTime"),
		SessionType:           r.FormValue("sessionType"),
		HasInsurance:          formBool(r.FormValue("hasInsurance")),
		InsuranceProvider:     r.FormValue("insuranceProvider"),
		PolicyNumber:          r.FormValue("policyNumber"),
		IsEmergency:           formBool(r.FormValue("isEmergency")),
		EmergencyContactName:  r.FormValue("emergencyContactName"),
		EmergencyContactPhone: r.FormValue("emergencyContactPhone"),
		ReasonForCounseling:   r.FormValue("reasonForCounseling"),
		PreviousCounseling:    formBool(r.FormValue("previousCounseling")),
		Medications:           r.FormValue("medications"),
		AdditionalInfo:        r.FormValue("additionalInfo"),
	}
	if request.SessionType == "" {
		request.SessionType = constvars.SessionTypeInPerson
	}
	return request
}

// NewAppointmentRequest returns the booking form in its default state.
func NewAppointmentRequest() *requests.AppointmentRequest {
	return &requests.AppointmentRequest{SessionType: constvars.SessionTypeInPerson}
}

func BuildContactMessage(r *http.Request) *requests.ContactMessage {
	return &requests.ContactMessage{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Subject: r.FormValue("subject"),
		Message: r.FormValue("message"),
	}
}

func BuildLoginRequest(r *http.Request) *requests.LoginRequest {
	return &requests.LoginRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}
}

func BuildRegisterRequest(r *http.Request) *requests.RegisterRequest {
	return &requests.RegisterRequest{
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Phone:     r.FormValue("phone"),
	}
}

// BuildProfileUpdate only sets the fields the visitor filled in.
func BuildProfileUpdate(r *http.Request) *requests.ProfileUpdate {
	return &requests.ProfileUpdate{
		FirstName:   optionalFormValue(r, "firstName"),
		LastName:    optionalFormValue(r, "lastName"),
		Phone:       optionalFormValue(r, "phone"),
		DateOfBirth: optionalFormValue(r, "dateOfBirth"),
	}
}

func BuildUpdateAppointmentRequest(r *http.Request) *requests.UpdateAppointmentRequest {
	return &requests.UpdateAppointmentRequest{
		PreferredDate:  strings.TrimSpace(r.FormValue("preferredDate")),
		PreferredTime:  strings.TrimSpace(r.FormValue("preferredTime")),
		SessionType:    strings.TrimSpace(r.FormValue("sessionType")),
		AdditionalInfo: strings.TrimSpace(r.FormValue("additionalInfo")),
	}
}

func BuildCancelAppointmentRequest(r *http.Request) *requests.CancelAppointmentRequest {
	return &requests.CancelAppointmentRequest{
		Reason: strings.TrimSpace(r.FormValue("reason")),
	}
}

func optionalFormValue(r *http.Request, key string) *string {
	value := strings.TrimSpace(r.FormValue(key))
	if value == "" {
		return nil
	}
	return &value
}

func formBool(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
