package responses

type Service struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description"`
	Features    []string `json:"features,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Badge       string   `json:"badge,omitempty"`
	Available   bool     `json:"available"`
}

type ServiceList struct {
	Envelope
	Services []Service `json:"services"`
}
