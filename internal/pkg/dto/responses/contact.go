package responses

type ContactResult struct {
	Envelope
}
