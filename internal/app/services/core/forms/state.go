package forms

import (
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/exceptions"
)

type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// State is the lifecycle of one form submission. Message is shown to the
// visitor once the phase is terminal; Err keeps the cause of a failure.
type State struct {
	Phase   Phase
	Message string
	Err     error
}

func (s State) IsSubmitting() bool {
	return s.Phase == Submitting
}

func (s State) IsSucceeded() bool {
	return s.Phase == Succeeded
}

func (s State) IsFailed() bool {
	return s.Phase == Failed
}

// FieldError returns the field rejected by local validation, if any.
func (s State) FieldError() string {
	if validationErr, ok := exceptions.AsValidationError(s.Err); ok {
		return validationErr.Field
	}
	return ""
}

type Event interface {
	isEvent()
}

type Submit struct{}

// Resolve completes a submission. ServerMessage wins over Default when set.
type Resolve struct {
	ServerMessage string
	Default       string
}

// Reject fails a submission. Fallback is shown when Err carries no better message.
type Reject struct {
	Err      error
	Fallback string
}

type Reset struct{}

func (Submit) isEvent()  {}
func (Resolve) isEvent() {}
func (Reject) isEvent()  {}
func (Reset) isEvent()   {}

// Reduce is the only way a form State changes. Events that do not apply to
// the current phase leave the state untouched, so a second Submit while a
// submission is in flight is ignored.
func Reduce(state State, event Event) State {
	switch e := event.(type) {
	case Submit:
		if state.Phase == Submitting {
			return state
		}
		return State{Phase: Submitting}
	case Resolve:
		if state.Phase != Submitting {
			return state
		}
		message := e.ServerMessage
		if message == "" {
			message = e.Default
		}
		return State{Phase: Succeeded, Message: message}
	case Reject:
		if state.Phase != Submitting {
			return state
		}
		return State{Phase: Failed, Message: FailureMessage(e.Err, e.Fallback), Err: e.Err}
	case Reset:
		return State{Phase: Idle}
	default:
		return state
	}
}

// FailureMessage picks the visitor facing text for err. Local validation text
// comes first, then the network, 404 and 5xx messages, then whatever the
// server said, and finally fallback.
func FailureMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if validationErr, ok := exceptions.AsValidationError(err); ok {
		return validationErr.Message
	}
	apiErr, ok := exceptions.AsAPIError(err)
	if !ok {
		return fallback
	}
	switch apiErr.Kind {
	case exceptions.KindNetwork:
		return constvars.ErrClientNetworkError
	case exceptions.KindNotFound:
		return constvars.ErrClientEndpointNotFound
	case exceptions.KindServer:
		return constvars.ErrClientServerError
	}
	if apiErr.ServerMessage != "" {
		return apiErr.ServerMessage
	}
	return fallback
}
