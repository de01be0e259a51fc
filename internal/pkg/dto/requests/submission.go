package requests

// SubmissionEvent announces an accepted form submission on the message queue.
type SubmissionEvent struct {
	Form        string `json:"form"`
	RequestID   string `json:"requestId"`
	Email       string `json:"email"`
	Subject     string `json:"subject,omitempty"`
	IsEmergency bool   `json:"isEmergency"`
	SubmittedAt string `json:"submittedAt"`
}
