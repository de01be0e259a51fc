package contacts

import (
	"context"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"
)

const (
	minNameLength    = 2
	minMessageLength = 10
)

type contactUsecase struct {
	ContactClient contracts.ContactClient
	Publisher     contracts.SubmissionPublisher
	Submitter     *forms.Submitter
	Log           *zap.Logger
}

func NewContactUsecase(
	contactClient contracts.ContactClient,
	publisher contracts.SubmissionPublisher,
	websiteMetrics *metrics.WebsiteMetrics,
	logger *zap.Logger,
) contracts.ContactUsecase {
	return &contactUsecase{
		ContactClient: contactClient,
		Publisher:     publisher,
		Submitter: &forms.Submitter{
			Form:     constvars.FormContact,
			Success:  constvars.ContactSentDefaultMessage,
			Fallback: constvars.ErrClientContactFallback,
			Metrics:  websiteMetrics,
			Log:      logger,
		},
		Log: logger,
	}
}

func (uc *contactUsecase) SendMessage(ctx context.Context, request *requests.ContactMessage) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("contactUsecase.SendMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeContactMessage(request)

	return uc.Submitter.Submit(ctx,
		func() error {
			return ValidateContactMessage(request)
		},
		func(ctx context.Context) (string, error) {
			result, err := uc.ContactClient.SendContactMessage(ctx, request)
			if err != nil {
				uc.Log.Error("contactUsecase.SendMessage error sending contact message",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return "", err
			}

			event := &requests.SubmissionEvent{
				Form:        constvars.FormContact,
				RequestID:   requestID,
				Email:       request.Email,
				Subject:     request.Subject,
				IsEmergency: request.Subject == constvars.ContactSubjectCrisis,
				SubmittedAt: time.Now().UTC().Format(time.RFC3339),
			}
			if err := uc.Publisher.PublishSubmission(ctx, event); err != nil {
				uc.Log.Warn("contactUsecase.SendMessage error publishing submission event",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}

			if result == nil {
				return "", nil
			}
			return result.ServerMessage(), nil
		},
	)
}

// ValidateContactMessage expects an already trimmed message.
func ValidateContactMessage(request *requests.ContactMessage) error {
	if utf8.RuneCountInString(request.Name) < minNameLength {
		return exceptions.ErrFieldValidation("name", constvars.ErrContactInvalidName)
	}
	if request.Email == "" || !strings.Contains(request.Email, "@") {
		return exceptions.ErrFieldValidation("email", constvars.ErrContactInvalidEmail)
	}
	if request.Subject == "" {
		return exceptions.ErrFieldValidation("subject", constvars.ErrContactMissingSubject)
	}
	if utf8.RuneCountInString(request.Message) < minMessageLength {
		return exceptions.ErrFieldValidation("message", constvars.ErrContactShortMessage)
	}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.ErrStructValidation(err)
	}
	return nil
}
