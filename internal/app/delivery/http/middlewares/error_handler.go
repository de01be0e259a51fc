package middlewares

import (
	"errors"
	"net/http"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic anywhere below it into the error page.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				m.Log.Error("Middlewares.ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
					zap.Stack("stack"),
				)
				m.Views.RenderError(w, r, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
