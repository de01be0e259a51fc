package accounts

import (
	"context"
	"shrm-web/internal/app/contracts"
	"shrm-web/internal/app/services/core/forms"
	"shrm-web/internal/app/services/shared/metrics"
	"shrm-web/internal/pkg/constvars"
	"shrm-web/internal/pkg/dto/requests"
	"shrm-web/internal/pkg/dto/responses"
	"shrm-web/internal/pkg/exceptions"
	"shrm-web/internal/pkg/utils"

	"go.uber.org/zap"
)

// AccountAPI is the part of the backend API used by account pages.
type AccountAPI interface {
	contracts.AuthClient
	contracts.AppointmentClient
	contracts.ProfileClient
}

type accountUsecase struct {
	API     AccountAPI
	Tokens  contracts.TokenProvider
	Metrics *metrics.WebsiteMetrics
	Log     *zap.Logger
}

func NewAccountUsecase(
	api AccountAPI,
	tokens contracts.TokenProvider,
	websiteMetrics *metrics.WebsiteMetrics,
	logger *zap.Logger,
) contracts.AccountUsecase {
	return &accountUsecase{
		API:     api,
		Tokens:  tokens,
		Metrics: websiteMetrics,
		Log:     logger,
	}
}

func (uc *accountUsecase) submitter(form, success string) *forms.Submitter {
	return &forms.Submitter{
		Form:     form,
		Success:  success,
		Fallback: constvars.ErrClientUnexpected,
		Metrics:  uc.Metrics,
		Log:      uc.Log,
	}
}

func (uc *accountUsecase) IsLoggedIn(ctx context.Context) bool {
	token, err := uc.Tokens.GetToken(ctx)
	if err != nil {
		uc.Log.Warn("accountUsecase.IsLoggedIn error reading token",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.Error(err),
		)
		return false
	}
	return token != ""
}

func (uc *accountUsecase) Login(ctx context.Context, request *requests.LoginRequest) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeLoginRequest(request)

	return uc.submitter(constvars.FormLogin, constvars.LoginSuccessMessage).Submit(ctx,
		func() error {
			if err := validateFields(
				fieldRules{"email", "Email", request.Email, []utils.Rule{utils.RuleRequired, utils.RuleEmail}},
				fieldRules{"password", "Password", request.Password, []utils.Rule{utils.RuleRequired}},
			); err != nil {
				return err
			}
			return structError(utils.ValidateStruct(request))
		},
		func(ctx context.Context) (string, error) {
			auth, err := uc.API.Login(ctx, request)
			if err != nil {
				return "", err
			}
			if auth.Token == "" {
				return "", exceptions.ErrAPIIncompleteResponse(constvars.MethodPost, constvars.ResourceAuthLogin, constvars.ErrDevAPIMissingToken)
			}
			if err := uc.startSession(ctx, auth.Token); err != nil {
				uc.Log.Error("accountUsecase.Login error storing token",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return "", err
			}
			return auth.ServerMessage(), nil
		},
	)
}

func (uc *accountUsecase) Register(ctx context.Context, request *requests.RegisterRequest) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeRegisterRequest(request)

	return uc.submitter(constvars.FormRegister, constvars.RegisterSuccessMessage).Submit(ctx,
		func() error {
			if err := validateFields(
				fieldRules{"firstName", "First name", request.FirstName, []utils.Rule{utils.RuleRequired}},
				fieldRules{"lastName", "Last name", request.LastName, []utils.Rule{utils.RuleRequired}},
				fieldRules{"email", "Email", request.Email, []utils.Rule{utils.RuleRequired, utils.RuleEmail}},
				fieldRules{"password", "Password", request.Password, []utils.Rule{utils.RuleRequired}},
			); err != nil {
				return err
			}
			if request.Phone != "" {
				if err := validateFields(fieldRules{"phone", "Phone", request.Phone, []utils.Rule{utils.RulePhone}}); err != nil {
					return err
				}
			}
			return structError(utils.ValidateStruct(request))
		},
		func(ctx context.Context) (string, error) {
			auth, err := uc.API.Register(ctx, request)
			if err != nil {
				return "", err
			}
			// A token in the register response logs the visitor in.
			if auth.Token != "" {
				if err := uc.startSession(ctx, auth.Token); err != nil {
					uc.Log.Warn("accountUsecase.Register error storing token",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.Error(err),
					)
				}
			}
			return auth.ServerMessage(), nil
		},
	)
}

// startSession moves the visitor to a fresh session id before storing the
// token, so an id handed out before login never holds a bearer token.
func (uc *accountUsecase) startSession(ctx context.Context, token string) error {
	requestID := utils.GetRequestID(ctx)
	if err := uc.Tokens.ClearToken(ctx); err != nil {
		uc.Log.Warn("accountUsecase.startSession error clearing previous token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if _, rotated := utils.RotateSessionID(ctx); !rotated {
		uc.Log.Warn("accountUsecase.startSession session id was not rotated",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return uc.Tokens.SetToken(ctx, token)
}

func (uc *accountUsecase) Logout(ctx context.Context) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.Tokens.ClearToken(ctx); err != nil {
		uc.Log.Error("accountUsecase.Logout error clearing token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (uc *accountUsecase) GetProfile(ctx context.Context) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	profile, err := uc.API.GetProfile(ctx)
	if err != nil {
		uc.Log.Error("accountUsecase.GetProfile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if profile.User == nil {
		return nil, exceptions.ErrAPIIncompleteResponse(constvars.MethodGet, constvars.ResourceUserProfile, constvars.ErrDevAPIMissingUser)
	}
	return profile.User, nil
}

func (uc *accountUsecase) UpdateProfile(ctx context.Context, request *requests.ProfileUpdate) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	return uc.submitter(constvars.FormProfile, constvars.UpdateProfileSuccessMessage).Submit(ctx,
		func() error {
			if request.IsEmpty() {
				return exceptions.ErrFieldValidation("", constvars.ErrProfileNothingToUpdate)
			}
			if request.Phone != nil {
				if err := validateFields(fieldRules{"phone", "Phone", *request.Phone, []utils.Rule{utils.RulePhone}}); err != nil {
					return err
				}
			}
			return structError(utils.ValidateStruct(request))
		},
		func(ctx context.Context) (string, error) {
			profile, err := uc.API.UpdateProfile(ctx, request)
			if err != nil {
				return "", err
			}
			return profile.ServerMessage(), nil
		},
	)
}

func (uc *accountUsecase) ListAppointments(ctx context.Context) ([]responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	list, err := uc.API.GetAppointments(ctx)
	if err != nil {
		uc.Log.Error("accountUsecase.ListAppointments error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("accountUsecase.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(list.Appointments)),
	)
	return list.Appointments, nil
}

func (uc *accountUsecase) GetAppointment(ctx context.Context, appointmentID string) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.GetAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	result, err := uc.API.GetAppointment(ctx, appointmentID)
	if err != nil {
		uc.Log.Error("accountUsecase.GetAppointment error fetching appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}
	if result.Appointment == nil {
		return nil, exceptions.ErrAPIIncompleteResponse(constvars.MethodGet, constvars.ResourceAppointments+"/"+appointmentID, constvars.ErrDevAPIMissingAppointment)
	}
	return result.Appointment, nil
}

func (uc *accountUsecase) RescheduleAppointment(ctx context.Context, appointmentID string, request *requests.UpdateAppointmentRequest) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.RescheduleAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return uc.submitter(constvars.FormReschedule, constvars.RescheduleAppointmentSuccessMessage).Submit(ctx,
		func() error {
			if request.PreferredDate == "" && request.PreferredTime == "" && request.SessionType == "" {
				return exceptions.ErrFieldValidation("", constvars.ErrRescheduleNothingToUpdate)
			}
			if request.PreferredDate != "" {
				if err := validateFields(fieldRules{"preferredDate", "Preferred date", request.PreferredDate, []utils.Rule{utils.RuleDate}}); err != nil {
					return err
				}
			}
			if request.PreferredTime != "" {
				if err := validateFields(fieldRules{"preferredTime", "Preferred time", request.PreferredTime, []utils.Rule{utils.RuleTime, utils.RuleSlot}}); err != nil {
					return err
				}
			}
			return structError(utils.ValidateStruct(request))
		},
		func(ctx context.Context) (string, error) {
			result, err := uc.API.UpdateAppointment(ctx, appointmentID, request)
			if err != nil {
				return "", err
			}
			return result.ServerMessage(), nil
		},
	)
}

func (uc *accountUsecase) CancelAppointment(ctx context.Context, appointmentID string, request *requests.CancelAppointmentRequest) forms.State {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("accountUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	return uc.submitter(constvars.FormCancel, constvars.CancelAppointmentSuccessMessage).Submit(ctx,
		func() error {
			return structError(utils.ValidateStruct(request))
		},
		func(ctx context.Context) (string, error) {
			result, err := uc.API.CancelAppointment(ctx, appointmentID, request)
			if err != nil {
				return "", err
			}
			return result.ServerMessage(), nil
		},
	)
}
