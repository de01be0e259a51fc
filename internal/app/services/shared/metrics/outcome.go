package metrics

import "shrm-web/internal/pkg/exceptions"

// OutcomeOf maps an error returned by a submission or API call to an outcome label.
func OutcomeOf(err error) string {
	if err == nil {
		return OutcomeSuccess
	}
	if _, ok := exceptions.AsValidationError(err); ok {
		return OutcomeValidation
	}
	apiErr, ok := exceptions.AsAPIError(err)
	if !ok {
		return OutcomeGeneric
	}
	switch apiErr.Kind {
	case exceptions.KindNetwork:
		return OutcomeNetwork
	case exceptions.KindNotFound:
		return OutcomeNotFound
	case exceptions.KindServer:
		return OutcomeServer
	case exceptions.KindAuth:
		return OutcomeAuth
	default:
		return OutcomeGeneric
	}
}
