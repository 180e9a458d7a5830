// Package router contains routing setup for the HTTP delivery.
package router

import (
	"fmt"

	"eventhub/config"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/delivery/http/router/handler"
	"eventhub/internal/domain/entity"
	"eventhub/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// multipart framing on top of the file itself
const uploadBodyOverhead = 64 << 10

// Upload routes carry their own body limit sized from storage.maxUploadSize.
const (
	AvatarUploadPath = "/api/v1/profile/avatar"
	LogoUploadPath   = "/api/v1/vendor/profile/logo"
)

// IsUploadRoute reports whether path is a registered upload route.
func IsUploadRoute(path string) bool {
	return path == AvatarUploadPath || path == LogoUploadPath
}

type RouterParams struct {
	fx.In

	AuthHandler            *handler.AuthHandler
	ProfileHandler         *handler.ProfileHandler
	VendorProfileHandler   *handler.VendorProfileHandler
	VendorDashboardHandler *handler.VendorDashboardHandler
	InquiryHandler         *handler.InquiryHandler
	AnalyticsHandler       *handler.AnalyticsHandler
	PlannerHandler         *handler.PlannerHandler
	PubSubPushHandler      *handler.PubSubPushHandler
	UploadsHandler         *handler.UploadsHandler
	AuthMiddleware         *middleware.AuthMiddleware
	Config                 *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler            *handler.AuthHandler
	profileHandler         *handler.ProfileHandler
	vendorProfileHandler   *handler.VendorProfileHandler
	vendorDashboardHandler *handler.VendorDashboardHandler
	inquiryHandler         *handler.InquiryHandler
	analyticsHandler       *handler.AnalyticsHandler
	plannerHandler         *handler.PlannerHandler
	pubSubPushHandler      *handler.PubSubPushHandler
	uploadsHandler         *handler.UploadsHandler
	authMiddleware         *middleware.AuthMiddleware
	config                 *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:            params.AuthHandler,
		profileHandler:         params.ProfileHandler,
		vendorProfileHandler:   params.VendorProfileHandler,
		vendorDashboardHandler: params.VendorDashboardHandler,
		inquiryHandler:         params.InquiryHandler,
		analyticsHandler:       params.AnalyticsHandler,
		plannerHandler:         params.PlannerHandler,
		pubSubPushHandler:      params.PubSubPushHandler,
		uploadsHandler:         params.UploadsHandler,
		authMiddleware:         params.AuthMiddleware,
		config:                 params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Change feed push endpoint, authenticated by OIDC token in google mode
	e.POST(pubsub.PushPath, r.pubSubPushHandler.HandlePush)

	// Uploaded avatars and logos
	e.GET("/uploads/*", r.uploadsHandler.Serve)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
	}

	uploadLimit := echomiddleware.BodyLimit(r.uploadBodyLimit())

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	profileGroup := apiV1.Group("/profile")
	{
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.PUT("", r.profileHandler.UpdateProfile)
		profileGroup.POST("/avatar", r.profileHandler.UploadAvatar, uploadLimit)
	}

	// Vendor-only routes
	vendorGroup := apiV1.Group("/vendor")
	vendorGroup.Use(r.authMiddleware.RequireRole(entity.RoleVendor))
	{
		vendorGroup.GET("/profile", r.vendorProfileHandler.GetProfile)
		vendorGroup.POST("/profile", r.vendorProfileHandler.CreateProfile)
		vendorGroup.PUT("/profile", r.vendorProfileHandler.UpdateProfile)
		vendorGroup.POST("/profile/logo", r.vendorProfileHandler.UploadLogo, uploadLimit)
		vendorGroup.GET("/profile/qr", r.vendorProfileHandler.ShareQRCode)

		vendorGroup.GET("/dashboard", r.vendorDashboardHandler.GetDashboard)
		vendorGroup.POST("/dashboard/refresh", r.vendorDashboardHandler.Refresh)
		vendorGroup.GET("/dashboard/stream", r.vendorDashboardHandler.Stream)

		vendorGroup.PATCH("/inquiries/:id/status", r.inquiryHandler.UpdateStatus)
	}

	// Public vendor interactions, any authenticated user
	vendorsGroup := apiV1.Group("/vendors/:vendorID")
	{
		vendorsGroup.POST("/inquiries", r.inquiryHandler.Submit)
		vendorsGroup.POST("/views", r.analyticsHandler.RecordView)
	}

	plannerGroup := apiV1.Group("/planner")
	plannerGroup.Use(r.authMiddleware.RequireRole(entity.RolePlanner))
	{
		plannerGroup.GET("/dashboard", r.plannerHandler.GetDashboard)

		plannerGroup.GET("/events", r.plannerHandler.ListEvents)
		plannerGroup.POST("/events", r.plannerHandler.CreateEvent)
		plannerGroup.PUT("/events/:id", r.plannerHandler.UpdateEvent)
		plannerGroup.DELETE("/events/:id", r.plannerHandler.DeleteEvent)

		plannerGroup.GET("/events/:id/guests", r.plannerHandler.ListGuests)
		plannerGroup.POST("/events/:id/guests", r.plannerHandler.AddGuest)
		plannerGroup.PUT("/guests/:id", r.plannerHandler.UpdateGuest)
		plannerGroup.DELETE("/guests/:id", r.plannerHandler.RemoveGuest)

		plannerGroup.GET("/events/:id/budget-items", r.plannerHandler.ListBudgetItems)
		plannerGroup.POST("/events/:id/budget-items", r.plannerHandler.AddBudgetItem)
		plannerGroup.PUT("/budget-items/:id", r.plannerHandler.UpdateBudgetItem)
		plannerGroup.DELETE("/budget-items/:id", r.plannerHandler.RemoveBudgetItem)

		plannerGroup.GET("/events/:id/checklist-items", r.plannerHandler.ListChecklistItems)
		plannerGroup.POST("/events/:id/checklist-items", r.plannerHandler.AddChecklistItem)
		plannerGroup.PUT("/checklist-items/:id", r.plannerHandler.UpdateChecklistItem)
		plannerGroup.DELETE("/checklist-items/:id", r.plannerHandler.RemoveChecklistItem)
	}
}

func (r *router) uploadBodyLimit() string {
	limit := r.config.Storage.MaxUploadSize + uploadBodyOverhead

	return fmt.Sprintf("%dB", limit)
}
