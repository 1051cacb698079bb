package router

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	authController "farmhub/pkg/auth/controller"
	cropController "farmhub/pkg/crop/controller"
	customerController "farmhub/pkg/customer/controller"
	ghController "farmhub/pkg/greenhouse/controller"
	healthController "farmhub/pkg/health/controller"
	"farmhub/pkg/logging"
	"farmhub/pkg/metrics"
	"farmhub/pkg/middleware"
	orderController "farmhub/pkg/order/controller"
	reportController "farmhub/pkg/report/controller"
	varietyController "farmhub/pkg/variety/controller"
)

type Handlers struct {
	Greenhouse ghController.GreenhouseController
	Variety    varietyController.VarietyController
	Crop       cropController.CropController
	Customer   customerController.CustomerController
	Order      orderController.OrderController
	Report     reportController.ReportController
	Auth       authController.AuthController
	Health     healthController.HealthController

	// Sessions resolves bearer tokens for the authenticated groups.
	Sessions middleware.Authenticator
	// PublicLimit throttles the unauthenticated storefront routes; nil disables it.
	PublicLimit echo.MiddlewareFunc
	CORSOrigins []string
}

func New(e *echo.Echo, h Handlers) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(logging.RequestLogger())
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: h.CORSOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/health", h.Health.Health)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// storefront
	pub := e.Group("/api/public")
	if h.PublicLimit != nil {
		pub.Use(h.PublicLimit)
	}
	pub.GET("/varieties", h.Variety.PriceList)
	pub.POST("/orders", h.Order.SubmitPublic)
	pub.GET("/orders/:id/feedback", h.Order.FeedbackEligibility)
	pub.POST("/orders/:id/feedback", h.Order.SubmitFeedback)

	// auth
	e.POST("/api/auth/login", h.Auth.Login, publicLimit(h)...)
	e.POST("/api/auth/register", h.Auth.Register, publicLimit(h)...)
	session := e.Group("/api/auth", middleware.Session(h.Sessions))
	session.GET("/me", h.Auth.Me)
	session.POST("/logout", h.Auth.Logout)
	session.POST("/password", h.Auth.ChangePassword)

	// admin console
	api := e.Group("/api", middleware.Session(h.Sessions), middleware.RequireAdmin())

	api.GET("/users", h.Auth.ListUsers)
	api.PATCH("/users/:id/role", h.Auth.SetRole)

	api.GET("/greenhouses", h.Greenhouse.List)
	api.POST("/greenhouses", h.Greenhouse.Create)
	api.GET("/greenhouses/:id", h.Greenhouse.Get)
	api.GET("/beds", h.Greenhouse.ListBeds)
	api.GET("/beds/:id", h.Greenhouse.GetBed)
	api.PATCH("/beds/:id/status", h.Greenhouse.SetBedStatus)

	api.GET("/varieties", h.Variety.List)
	api.POST("/varieties", h.Variety.Create)
	api.POST("/varieties/import", h.Variety.Import)
	api.GET("/varieties/:id", h.Variety.Get)
	api.PUT("/varieties/:id", h.Variety.Update)
	api.DELETE("/varieties/:id", h.Variety.Delete)

	api.GET("/crops", h.Crop.List)
	api.POST("/crops", h.Crop.Create)
	api.GET("/crops/:id", h.Crop.Get)
	api.PATCH("/crops/:id", h.Crop.Patch)
	api.PATCH("/crops/:id/status", h.Crop.SetStatus)
	api.DELETE("/crops/:id", h.Crop.Delete)
	api.GET("/crops/:id/harvests", h.Crop.ListHarvests)
	api.POST("/crops/:id/harvests", h.Crop.AddHarvest)
	api.DELETE("/crops/:id/harvests/:record_id", h.Crop.DeleteHarvest)
	api.POST("/crops/:id/complete-harvest", h.Crop.CompleteHarvest)
	api.GET("/crops/:id/activities", h.Crop.ListActivities)
	api.POST("/crops/:id/activities", h.Crop.LogActivity)
	api.GET("/activities", h.Crop.ListActivities)
	api.DELETE("/activities/:id", h.Crop.DeleteActivity)

	api.GET("/customers", h.Customer.List)
	api.POST("/customers", h.Customer.Create)
	api.GET("/customers/:id", h.Customer.Get)
	api.PUT("/customers/:id", h.Customer.Update)
	api.DELETE("/customers/:id", h.Customer.Delete)

	api.GET("/orders", h.Order.List)
	api.POST("/orders", h.Order.Create)
	api.GET("/orders/crop-demand", h.Order.CropDemand)
	api.GET("/orders/:id", h.Order.Get)
	api.PUT("/orders/:id", h.Order.Update)
	api.DELETE("/orders/:id", h.Order.Delete)
	api.PATCH("/orders/:id/delivery-status", h.Order.SetDeliveryStatus)
	api.PATCH("/orders/:id/payment-status", h.Order.SetPaymentStatus)
	api.GET("/feedback", h.Order.ListFeedback)

	api.GET("/reports/dashboard", h.Report.Dashboard)
	api.GET("/reports/dashboard.xlsx", h.Report.DashboardXLSX)
	api.GET("/reports/varieties", h.Report.Varieties)
	api.GET("/reports/customers", h.Report.Customers)
	api.GET("/reports/crop-demand.xlsx", h.Report.CropDemandXLSX)

	return e
}

func publicLimit(h Handlers) []echo.MiddlewareFunc {
	if h.PublicLimit == nil {
		return nil
	}
	return []echo.MiddlewareFunc{h.PublicLimit}
}
