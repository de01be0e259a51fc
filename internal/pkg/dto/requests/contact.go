package requests

type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject" validate:"oneof=appointment services insurance crisis feedback other"`
	Message string `json:"message"`
}
