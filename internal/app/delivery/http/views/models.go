package views

import (
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"
)

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

type Flash struct {
	Type    string
	Message string
}

func SuccessFlash(message string) *Flash {
	return &Flash{Type: FlashSuccess, Message: message}
}

func ErrorFlash(message string) *Flash {
	return &Flash{Type: FlashError, Message: message}
}

// FlashFromState returns the banner for a terminal form state, nil otherwise.
func FlashFromState(state forms.State) *Flash {
	switch state.Phase {
	case forms.Succeeded:
		return SuccessFlash(state.Message)
	case forms.Failed:
		return ErrorFlash(state.Message)
	default:
		return nil
	}
}

// PageData is what the layout receives. Data holds the page specific model.
type PageData struct {
	Title       string
	CurrentPath string
	LoggedIn    bool
	RequestID   string
	Flash       *Flash
	Data        any
}

type ContentPage struct {
	Page *responses.Page
}

type ServicesPage struct {
	Page     *responses.Page
	Services []responses.Service
}

type AppointmentForm struct {
	Form  *requests.AppointmentRequest
	State forms.State
}

type ContactForm struct {
	Form  *requests.ContactMessage
	State forms.State
}

type LoginForm struct {
	Form  *requests.LoginRequest
	State forms.State
}

type RegisterForm struct {
	Form  *requests.RegisterRequest
	State forms.State
}

type ProfilePage struct {
	User  *responses.User
	State forms.State
}

type MyAppointmentsPage struct {
	Appointments []responses.Appointment
}

type AppointmentDetailPage struct {
	Appointment *responses.Appointment
	State       forms.State
}

type ErrorPage struct {
	StatusCode int
}
