package forms

import (
	"context"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

// Submitter drives a single submission of one form through Reduce.
type Submitter struct {
	Form     string
	Success  string
	Fallback string
	Metrics  *metrics.WebsiteMetrics
	Log      *zap.Logger
}

// Submit validates locally and only then calls send. A validation failure
// never reaches the network. There is no retry.
func (s *Submitter) Submit(ctx context.Context, validate func() error, send func(ctx context.Context) (string, error)) State {
	requestID := utils.GetRequestID(ctx)
	state := Reduce(State{}, Submit{})

	err := validate()
	if err == nil {
		var serverMessage string
		serverMessage, err = send(ctx)
		if err == nil {
			state = Reduce(state, Resolve{ServerMessage: serverMessage, Default: s.Success})
		}
	}
	if err != nil {
		state = Reduce(state, Reject{Err: err, Fallback: s.Fallback})
	}

	s.Metrics.ObserveFormSubmission(s.Form, metrics.OutcomeOf(err))
	if state.IsFailed() {
		s.Log.Warn("Submitter.Submit failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFormKey, s.Form),
			zap.String(constvars.LoggingErrorKindKey, metrics.OutcomeOf(err)),
			zap.Error(err),
		)
		return state
	}

	s.Log.Info("Submitter.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormKey, s.Form),
	)
	return state
}

// Settle records the outcome of an operation that was already performed,
// for pages that do not go through Submit.
func Settle(serverMessage, defaultMessage string, err error, fallback string) State {
	state := Reduce(State{}, Submit{})
	if err != nil {
		return Reduce(state, Reject{Err: err, Fallback: fallback})
	}
	return Reduce(state, Resolve{ServerMessage: serverMessage, Default: defaultMessage})
}
