package controller

import "github.com/labstack/echo/v4"

// OrderController serves the admin order routes and the public storefront routes.
type OrderController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	SetDeliveryStatus(c echo.Context) error
	SetPaymentStatus(c echo.Context) error
	CropDemand(c echo.Context) error
	ListFeedback(c echo.Context) error
	SubmitPublic(c echo.Context) error
	FeedbackEligibility(c echo.Context) error
	SubmitFeedback(c echo.Context) error
}
