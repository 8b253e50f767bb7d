// Package router contains routing setup for the API delivery.
package router

import (
	"crm/config"
	"crm/internal/delivery/api/middleware"
	"crm/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	EventHandler        *handler.EventHandler
	NotificationHandler *handler.NotificationHandler
	ClientHandler       *handler.ClientHandler
	SaleHandler         *handler.SaleHandler
	DeviceHandler       *handler.DeviceHandler
	DashboardHandler    *handler.DashboardHandler
	TestHandler         *handler.TestHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	eventHandler        *handler.EventHandler
	notificationHandler *handler.NotificationHandler
	clientHandler       *handler.ClientHandler
	saleHandler         *handler.SaleHandler
	deviceHandler       *handler.DeviceHandler
	dashboardHandler    *handler.DashboardHandler
	testHandler         *handler.TestHandler
	authMiddleware      *middleware.AuthMiddleware
	config              *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		eventHandler:        params.EventHandler,
		notificationHandler: params.NotificationHandler,
		clientHandler:       params.ClientHandler,
		saleHandler:         params.SaleHandler,
		deviceHandler:       params.DeviceHandler,
		dashboardHandler:    params.DashboardHandler,
		testHandler:         params.TestHandler,
		authMiddleware:      params.AuthMiddleware,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	eventsGroup := apiV1.Group("/events")
	{
		eventsGroup.POST("", r.eventHandler.CreateEvent)
		eventsGroup.GET("", r.eventHandler.ListEvents)
		eventsGroup.GET("/stream", r.eventHandler.StreamEvents)
		eventsGroup.GET("/calendar.ics", r.eventHandler.ExportCalendar)
		eventsGroup.GET("/:id", r.eventHandler.GetEvent)
		eventsGroup.PATCH("/:id", r.eventHandler.UpdateEvent)
		eventsGroup.DELETE("/:id", r.eventHandler.DeleteEvent)
	}

	notificationsGroup := apiV1.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/stream", r.notificationHandler.StreamNotifications)
		notificationsGroup.PATCH("/:id/status", r.notificationHandler.UpdateStatus)
		notificationsGroup.DELETE("/:id", r.notificationHandler.DeleteNotification)
	}

	clientsGroup := apiV1.Group("/clients")
	{
		clientsGroup.POST("", r.clientHandler.CreateClient)
		clientsGroup.GET("", r.clientHandler.ListClients)
		clientsGroup.GET("/:id", r.clientHandler.GetClient)
		clientsGroup.GET("/:id/qr", r.clientHandler.GetContactQR)
		clientsGroup.PATCH("/:id", r.clientHandler.UpdateClient)
		clientsGroup.DELETE("/:id", r.clientHandler.DeleteClient)
	}

	salesGroup := apiV1.Group("/sales")
	{
		salesGroup.POST("", r.saleHandler.CreateSale)
		salesGroup.GET("", r.saleHandler.ListSales)
		salesGroup.GET("/stream", r.saleHandler.StreamSales)
		salesGroup.GET("/:id", r.saleHandler.GetSale)
		salesGroup.PATCH("/:id", r.saleHandler.UpdateSale)
		salesGroup.DELETE("/:id", r.saleHandler.DeleteSale)
	}

	devicesGroup := apiV1.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	apiV1.GET("/dashboard", r.dashboardHandler.GetSummary)
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.POST("/token", r.testHandler.IssueToken)

		authGroup := testGroup.Group("/auth")
		authGroup.Use(r.authMiddleware.Authenticate)
		authGroup.GET("", r.testHandler.TestAuthMiddleware)
	}
}
