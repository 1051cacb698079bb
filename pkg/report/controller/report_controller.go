package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Dashboard(c echo.Context) error
	Varieties(c echo.Context) error
	Customers(c echo.Context) error
	DashboardXLSX(c echo.Context) error
	CropDemandXLSX(c echo.Context) error
}
