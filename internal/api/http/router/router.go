// Package router wires HTTP handlers into the service routes.
package router

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/devstock/devices-server/internal/api/http/handler"
	"github.com/devstock/devices-server/internal/api/http/middleware"
	"github.com/devstock/devices-server/internal/logger"
)

// Router registers the REST routes and middleware.
type Router struct {
	deviceService     handler.DeviceService
	userService       handler.UserService
	assignmentService handler.AssignmentService
	store             handler.Pinger
	logger            *logger.Logger
}

// New creates new Router instance.
func New(
	deviceService handler.DeviceService,
	userService handler.UserService,
	assignmentService handler.AssignmentService,
	store handler.Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		deviceService:     deviceService,
		userService:       userService,
		assignmentService: assignmentService,
		store:             store,
		logger:            logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()

	deviceHandler := handler.NewDevice(r.deviceService, r.logger)
	userHandler := handler.NewUser(r.userService, r.logger)
	assignmentHandler := handler.NewAssignment(r.assignmentService, r.logger)
	uploadHandler := handler.NewUpload(r.deviceService, r.userService, r.logger)
	healthHandler := handler.NewHealth(r.store, r.logger)

	m.HandleFunc("/devices", deviceHandler.List).Methods(http.MethodGet)
	m.HandleFunc("/devices", deviceHandler.Create).Methods(http.MethodPost)
	m.HandleFunc("/devices/{id}", deviceHandler.Get).Methods(http.MethodGet)
	m.HandleFunc("/devices/{id}", deviceHandler.Update).Methods(http.MethodPut)
	m.HandleFunc("/devices/{id}", deviceHandler.Delete).Methods(http.MethodDelete)

	m.HandleFunc("/devices/{id}/checkout", assignmentHandler.Checkout).Methods(http.MethodPost)
	m.HandleFunc("/devices/{id}/checkin", assignmentHandler.Checkin).Methods(http.MethodPost)
	m.HandleFunc("/user/{userId}/devices", assignmentHandler.DevicesForUser).Methods(http.MethodGet)

	m.HandleFunc("/register", userHandler.Register).Methods(http.MethodPost)
	m.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	m.HandleFunc("/login", userHandler.Login).Methods(http.MethodPost)

	m.HandleFunc("/upload/{deviceId}", uploadHandler.DeviceImage).Methods(http.MethodPost)
	m.HandleFunc("/device-image/{deviceId}", uploadHandler.GetDeviceImage).Methods(http.MethodGet)
	m.HandleFunc("/upload-user-image/{userId}", uploadHandler.UserImage).Methods(http.MethodPost)
	m.HandleFunc("/user-image/{userId}", uploadHandler.GetUserImage).Methods(http.MethodGet)

	m.HandleFunc("/health", healthHandler.Check).Methods(http.MethodGet)

	logging := middleware.NewLogging(r.logger)

	var h http.Handler = m
	h = logging.Handle(h)
	h = handlers.CompressHandler(h)
	h = handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(h)

	return h
}
