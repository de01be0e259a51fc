package contracts

import (
	"context"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/pkg/dto/requests"
)

type ContactUsecase interface {
	SendMessage(ctx context.Context, request *requests.ContactMessage) forms.State
}
