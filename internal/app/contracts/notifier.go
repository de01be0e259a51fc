package contracts

import (
	"context"
	"shrm-web/internal/pkg/dto/requests"
)

type SubmissionPublisher interface {
	PublishSubmission(ctx context.Context, event *requests.SubmissionEvent) error
}
