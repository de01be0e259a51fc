package utils

import (
	"context"
	"shrm-web/internal/pkg/constvars"
)

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetSessionID(ctx context.Context) string {
	switch session := ctx.Value(constvars.CONTEXT_SESSION_ID_KEY).(type) {
	case *VisitorSession:
		return session.ID()
	case string:
		return session
	}
	return ""
}
