package controller

import "github.com/labstack/echo/v4"

type GreenhouseController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	ListBeds(c echo.Context) error
	GetBed(c echo.Context) error
	SetBedStatus(c echo.Context) error
}
