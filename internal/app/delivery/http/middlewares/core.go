package middlewares

import (
	"context"
	"net/http"
	"shrm-web/internal/app/config"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := utils.GetRequestID(r.Context())
		isClientRequestID, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)

		m.Log.Info("HTTP request started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool("is_client_request_id", isClientRequestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
		)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		m.Log.Info("HTTP request completed",
			zap.Int(constvars.LoggingStatusCodeKey, rec.statusCode),
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Bool(constvars.LoggingSuccessKey, rec.statusCode < 400),
		)
	})
}

// RequestIDMiddleware reuses the caller's X-Request-ID when present. The id is
// forwarded to the backend API by the API client.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := true

		if requestID == "" {
			requestID = utils.GenerateRequestID()
			isClientRequestID = false
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// VisitorSession makes sure every visitor carries a session cookie and puts
// its id in the request context. The bearer token is stored against this id.
func (m *Middlewares) VisitorSession(next http.Handler) http.Handler {
	sessionConfig := m.InternalConfig.Session
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(sessionConfig.CookieName); err == nil && utils.IsValidSessionID(cookie.Value) {
			sessionID = cookie.Value
		} else {
			sessionID = utils.GenerateSessionID()
			m.Log.Debug("Middlewares.VisitorSession issued new session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
		}

		setSessionCookie(w, sessionConfig, sessionID)

		session := utils.NewVisitorSession(sessionID, func(rotatedID string) {
			m.Log.Info("Middlewares.VisitorSession rotated session",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
			)
			setSessionCookie(w, sessionConfig, rotatedID)
		})
		next.ServeHTTP(w, r.WithContext(utils.WithVisitorSession(r.Context(), session)))
	})
}

// setSessionCookie replaces any session cookie already queued on the response.
func setSessionCookie(w http.ResponseWriter, sessionConfig config.Session, sessionID string) {
	prefix := sessionConfig.CookieName + "="
	queued := w.Header().Values(constvars.HeaderSetCookie)
	kept := make([]string, 0, len(queued))
	for _, value := range queued {
		if !strings.HasPrefix(value, prefix) {
			kept = append(kept, value)
		}
	}
	w.Header().Del(constvars.HeaderSetCookie)
	for _, value := range kept {
		w.Header().Add(constvars.HeaderSetCookie, value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionConfig.CookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int((time.Duration(sessionConfig.TTLInHours) * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   sessionConfig.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

// RequireLogin sends anonymous visitors to the login page.
func (m *Middlewares) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := m.Tokens.GetToken(r.Context())
		if err != nil {
			m.Log.Error("Middlewares.RequireLogin error reading token",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
		}
		if token == "" {
			http.Redirect(w, r, constvars.RouteLogin, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (m *Middlewares) SecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(constvars.HeaderXContentTypeOptions, "nosniff")
		w.Header().Set(constvars.HeaderXFrameOptions, "DENY")
		w.Header().Set(constvars.HeaderReferrerPolicy, "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// BodyLimit caps request bodies at the configured size.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
