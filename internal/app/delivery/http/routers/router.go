package routers

import (
	"fmt"
	"shrm-web/internal/app/config"
	"shrm-web/internal/app/delivery/http/controllers"
	"shrm-web/internal/app/delivery/http/middlewares"
	"shrm-web/internal/pkg/constvars"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	registry *prometheus.Registry,
	middleware *middlewares.Middlewares,
	pageController *controllers.PageController,
	appointmentController *controllers.AppointmentController,
	contactController *controllers.ContactController,
	accountController *controllers.AccountController,
	healthController *controllers.HealthController,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	clientKey := httprate.KeyByIP
	if internalConfig.App.TrustProxyHeaders {
		clientKey = httprate.KeyByRealIP
	}
	rateLimitWindow := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	router.Use(httprate.Limit(internalConfig.App.MaxRequests, rateLimitWindow, httprate.WithKeyFuncs(clientKey)))

	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.Logging)
	router.Use(middleware.ErrorHandler)
	router.Use(middleware.SecurityHeaders)
	router.Use(middleware.HTTPMetrics)
	router.Use(middleware.BodyLimit)
	router.Use(middleware.VisitorSession)

	submissionLimiter := middlewares.NewSubmissionLimiter(
		internalConfig.App.FormSubmissionsPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.FormBlockTimeInMinutes)*time.Minute,
		clientKey,
		middleware.Log,
	)
	router.Use(submissionLimiter.Limit)

	router.NotFound(pageController.NotFound)
	router.MethodNotAllowed(pageController.NotFound)

	attachPageRoutes(router, pageController)
	attachFormRoutes(router, appointmentController, contactController)
	attachAccountRoutes(router, middleware, accountController)

	router.Get(constvars.RouteHealthz, healthController.Healthz)
	if internalConfig.Metrics.Enabled && registry != nil {
		router.Handle(constvars.RouteMetrics, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}
}

func attachPageRoutes(router chi.Router, pageController *controllers.PageController) {
	router.Get(constvars.RouteHome, pageController.Home)
	router.Get(constvars.RouteAbout, pageController.About)
	router.Get(constvars.RouteServices, pageController.Services)
	router.Get(constvars.RoutePrivacy, pageController.Privacy)
	router.Get(constvars.RouteTerms, pageController.Terms)
}

func attachFormRoutes(router chi.Router, appointmentController *controllers.AppointmentController, contactController *controllers.ContactController) {
	router.Get(constvars.RouteAppointments, appointmentController.Show)
	router.Post(constvars.RouteAppointments, appointmentController.Submit)
	router.Get(constvars.RouteContact, contactController.Show)
	router.Post(constvars.RouteContact, contactController.Submit)
}

func attachAccountRoutes(router chi.Router, middleware *middlewares.Middlewares, accountController *controllers.AccountController) {
	router.Get(constvars.RouteLogin, accountController.ShowLogin)
	router.Post(constvars.RouteLogin, accountController.Login)
	router.Get(constvars.RouteRegister, accountController.ShowRegister)
	router.Post(constvars.RouteRegister, accountController.Register)
	router.Post(constvars.RouteLogout, accountController.Logout)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin)

		r.Get(constvars.RouteProfile, accountController.Profile)
		r.Post(constvars.RouteProfile, accountController.UpdateProfile)

		r.Route(constvars.RouteMyAppointments, func(r chi.Router) {
			r.Get("/", accountController.MyAppointments)

			appointmentPath := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)
			r.Get(appointmentPath, accountController.AppointmentDetail)
			r.Post(appointmentPath+"/reschedule", accountController.RescheduleAppointment)
			r.Post(appointmentPath+"/cancel", accountController.CancelAppointment)
		})
	})
}
