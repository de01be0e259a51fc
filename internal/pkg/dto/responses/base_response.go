package responses

type ResponseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// Envelope holds the fields every backend API response may carry.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ServerMessage returns the message a visitor should see, preferring
// message over error.
func (e Envelope) ServerMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}
