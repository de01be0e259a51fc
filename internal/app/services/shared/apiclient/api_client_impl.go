package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"shrm-web/internal/app/config"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/responses"
	"shrm-web/internal/pkg/exceptions"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type apiClient struct {
	BaseUrl string
	Client  *http.Client
	Tokens  contracts.TokenProvider
	Limiter *rate.Limiter
	Metrics *metrics.WebsiteMetrics
	Log     *zap.Logger
}

// NewAPIClient builds the client of the counseling backend. The base URL is
// taken as resolved at startup and never recomputed.
func NewAPIClient(apiConfig config.API, tokens contracts.TokenProvider, websiteMetrics *metrics.WebsiteMetrics, logger *zap.Logger) contracts.APIClient {
	client := &apiClient{
		BaseUrl: strings.TrimRight(apiConfig.BaseURL, "/"),
		Client: &http.Client{
			Timeout: time.Duration(apiConfig.TimeoutInSeconds) * time.Second,
		},
		Tokens:  tokens,
		Metrics: websiteMetrics,
		Log:     logger,
	}
	if apiConfig.RateLimitPerSecond > 0 {
		client.Limiter = rate.NewLimiter(rate.Limit(apiConfig.RateLimitPerSecond), apiConfig.RateLimitBurst)
	}
	return client
}

func (c *apiClient) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	start := time.Now()
	err := c.send(ctx, operation, method, path, body, out)
	c.Metrics.ObserveAPIRequest(operation, metrics.OutcomeOf(err), time.Since(start))
	return err
}

func (c *apiClient) send(ctx context.Context, operation, method, path string, body, out interface{}) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation),
		zap.String(constvars.LoggingMethodKey, method),
		zap.String(constvars.LoggingEndpointKey, path),
	}

	if c.Limiter != nil {
		err := c.Limiter.Wait(ctx)
		if err != nil {
			c.Log.Error("apiClient.send outbound rate limiter refused request", append(fields, zap.Error(err))...)
			return exceptions.ErrAPINetwork(fmt.Errorf("%s: %w", constvars.ErrDevAPIRateLimited, err), method, path, isTimeout(err))
		}
	}

	var requestBody io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("apiClient.send error marshaling JSON", append(fields, zap.Error(err))...)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		requestBody = bytes.NewReader(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, requestBody)
	if err != nil {
		c.Log.Error("apiClient.send error creating HTTP request", append(fields, zap.Error(err))...)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	c.authorize(ctx, req, fields)

	resp, err := c.Client.Do(req)
	if err != nil {
		timeout := isTimeout(err)
		c.Log.Error("apiClient.send error sending HTTP request",
			append(fields, zap.Bool("timeout", timeout), zap.Error(err))...,
		)
		return exceptions.ErrAPINetwork(err, method, path, timeout)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("apiClient.send error reading response body", append(fields, zap.Error(err))...)
		return exceptions.ErrAPINetwork(err, method, path, isTimeout(err))
	}

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		return c.classify(ctx, method, path, resp.StatusCode, bodyBytes, fields)
	}

	if out != nil && len(bytes.TrimSpace(bodyBytes)) > 0 {
		err = json.Unmarshal(bodyBytes, out)
		if err != nil {
			c.Log.Error("apiClient.send error decoding response", append(fields, zap.Error(err))...)
			return exceptions.ErrAPIDecodeResponse(err, method, path, resp.StatusCode)
		}
	}

	c.Log.Debug("apiClient.send succeeded",
		append(fields,
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Int(constvars.LoggingResponseLengthKey, len(bodyBytes)),
		)...,
	)
	return nil
}

// authorize attaches the visitor bearer token. A token store failure is
// logged and the request goes out anonymous.
func (c *apiClient) authorize(ctx context.Context, req *http.Request, fields []zap.Field) {
	if c.Tokens == nil {
		return
	}
	token, err := c.Tokens.GetToken(ctx)
	if err != nil {
		c.Log.Warn("apiClient.authorize error reading visitor token", append(fields, zap.Error(err))...)
		return
	}
	if token != "" {
		req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf(constvars.AuthorizationBearerFormat, token))
	}
}

func (c *apiClient) classify(ctx context.Context, method, path string, statusCode int, bodyBytes []byte, fields []zap.Field) error {
	var envelope responses.Envelope
	if len(bytes.TrimSpace(bodyBytes)) > 0 {
		// Non-JSON error pages leave the server message empty.
		_ = json.Unmarshal(bodyBytes, &envelope)
	}

	apiErr := exceptions.ErrAPIResponse(method, path, statusCode, envelope.ServerMessage())
	fields = append(fields,
		zap.Int(constvars.LoggingStatusCodeKey, statusCode),
		zap.String(constvars.LoggingErrorKindKey, string(apiErr.Kind)),
	)

	if apiErr.Kind == exceptions.KindAuth && c.Tokens != nil {
		err := c.Tokens.ClearToken(ctx)
		if err != nil {
			c.Log.Error("apiClient.classify error clearing visitor token", append(fields, zap.Error(err))...)
		}
	}

	if apiErr.Kind == exceptions.KindServer {
		c.Log.Error("apiClient.classify backend server error", append(fields, zap.Error(apiErr))...)
	} else {
		c.Log.Warn("apiClient.classify backend rejected request", append(fields, zap.Error(apiErr))...)
	}
	return apiErr
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
