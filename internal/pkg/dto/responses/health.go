package responses

type Health struct {
	Envelope
	Status    string `json:"status,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

type HealthCheck struct {
	Website string `json:"website"`
	Backend string `json:"backend"`
	Detail  string `json:"detail,omitempty"`
}
