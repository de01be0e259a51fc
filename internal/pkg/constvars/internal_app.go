package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
)

const (
	REQUEST_ID_PREFIX = "SHRM_WEB_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

// API base URLs used when no override is configured.
const (
	APIBaseURLDevelopment = "http://localhost:5001/api"
	APIBaseURLProduction  = "https://shrm-server-production.up.railway.app/api"
)

const (
	HostnameLocalhost = "localhost"
	HostnameLoopback  = "127.0.0.1"
)

// StorageKeyToken is the fixed key the visitor bearer token is stored under.
const StorageKeyToken = "token"

const (
	RedisSessionKeyFormat = "shrm:session:%s:%s"
)

// Backend API resources
const (
	ResourceHealth       = "/health"
	ResourceAuthLogin    = "/auth/login"
	ResourceAuthRegister = "/auth/register"
	ResourceAppointments = "/appointments"
	ResourceContact      = "/contact"
	ResourceServices     = "/services"
	ResourceUserProfile  = "/users/profile"
	ResourceCancelSuffix = "/cancel"
)

// Website routes
const (
	RouteHome           = "/"
	RouteAbout          = "/about"
	RouteServices       = "/services"
	RoutePrivacy        = "/privacy"
	RouteTerms          = "/terms"
	RouteAppointments   = "/appointments"
	RouteContact        = "/contact"
	RouteLogin          = "/login"
	RouteRegister       = "/register"
	RouteLogout         = "/logout"
	RouteProfile        = "/profile"
	RouteMyAppointments = "/my/appointments"
	RouteHealthz        = "/healthz"
	RouteMetrics        = "/metrics"
)

// Backend API operation names, used in logs and metrics labels.
const (
	OperationHealthCheck       = "health_check"
	OperationLogin             = "login"
	OperationRegister          = "register"
	OperationCreateAppointment = "create_appointment"
	OperationGetAppointments   = "get_appointments"
	OperationGetAppointment    = "get_appointment"
	OperationUpdateAppointment = "update_appointment"
	OperationCancelAppointment = "cancel_appointment"
	OperationSendContact       = "send_contact_message"
	OperationGetServices       = "get_services"
	OperationGetProfile        = "get_profile"
	OperationUpdateProfile     = "update_profile"
)

const (
	FormAppointment = "appointment"
	FormContact     = "contact"
	FormLogin       = "login"
	FormRegister    = "register"
	FormProfile     = "profile"
	FormReschedule  = "reschedule"
	FormCancel      = "cancel"
)

// Embedded content pages
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageServices = "services"
	PagePrivacy  = "privacy"
	PageTerms    = "terms"
)

// Notices shown after a redirect, keyed by the notice query parameter.
const (
	QueryParamNotice      = "notice"
	QueryParamServiceType = "serviceType"
	NoticeLogout          = "logout"
)

var Notices = map[string]string{
	FormLogin:    LoginSuccessMessage,
	FormRegister: RegisterSuccessMessage,
	NoticeLogout: LogoutSuccessMessage,
}
