package apiclient

import (
	"context"
	"net/url"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

func (c *apiClient) HealthCheck(ctx context.Context) (*responses.Health, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.HealthCheck called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Health)
	err := c.do(ctx, constvars.OperationHealthCheck, constvars.MethodGet, constvars.ResourceHealth, nil, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.HealthCheck succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) Login(ctx context.Context, request *requests.LoginRequest) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Auth)
	err := c.do(ctx, constvars.OperationLogin, constvars.MethodPost, constvars.ResourceAuthLogin, request, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) Register(ctx context.Context, request *requests.RegisterRequest) (*responses.Auth, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Auth)
	err := c.do(ctx, constvars.OperationRegister, constvars.MethodPost, constvars.ResourceAuthRegister, request, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) CreateAppointment(ctx context.Context, request *requests.AppointmentRequest) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload := request.Payload()
	response := new(responses.AppointmentResult)
	err := c.do(ctx, constvars.OperationCreateAppointment, constvars.MethodPost, constvars.ResourceAppointments, &payload, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) GetAppointments(ctx context.Context) (*responses.AppointmentList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.GetAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.AppointmentList)
	err := c.do(ctx, constvars.OperationGetAppointments, constvars.MethodGet, constvars.ResourceAppointments, nil, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.GetAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) GetAppointment(ctx context.Context, appointmentID string) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.GetAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	response := new(responses.AppointmentResult)
	err := c.do(ctx, constvars.OperationGetAppointment, constvars.MethodGet, appointmentPath(appointmentID), nil, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.GetAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return response, nil
}

func (c *apiClient) UpdateAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	response := new(responses.AppointmentResult)
	err := c.do(ctx, constvars.OperationUpdateAppointment, constvars.MethodPut, appointmentPath(appointmentID), request, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.UpdateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return response, nil
}

func (c *apiClient) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointmentRequest) (*responses.AppointmentResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	response := new(responses.AppointmentResult)
	err := c.do(ctx, constvars.OperationCancelAppointment, constvars.MethodPatch, appointmentPath(appointmentID)+constvars.ResourceCancelSuffix, request, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return response, nil
}

func (c *apiClient) SendContactMessage(ctx context.Context, request *requests.ContactMessage) (*responses.ContactResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.SendContactMessage called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.ContactResult)
	err := c.do(ctx, constvars.OperationSendContact, constvars.MethodPost, constvars.ResourceContact, request, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.SendContactMessage succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) GetServices(ctx context.Context) (*responses.ServiceList, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.GetServices called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.ServiceList)
	err := c.do(ctx, constvars.OperationGetServices, constvars.MethodGet, constvars.ResourceServices, nil, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.GetServices succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) GetProfile(ctx context.Context) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Profile)
	err := c.do(ctx, constvars.OperationGetProfile, constvars.MethodGet, constvars.ResourceUserProfile, nil, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func (c *apiClient) UpdateProfile(ctx context.Context, request *requests.ProfileUpdate) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("apiClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	response := new(responses.Profile)
	err := c.do(ctx, constvars.OperationUpdateProfile, constvars.MethodPut, constvars.ResourceUserProfile, request, response)
	if err != nil {
		return nil, err
	}

	c.Log.Info("apiClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return response, nil
}

func appointmentPath(appointmentID string) string {
	return constvars.ResourceAppointments + "/" + url.PathEscape(appointmentID)
}
