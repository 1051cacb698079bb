package controller

import "github.com/labstack/echo/v4"

type CropController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Patch(c echo.Context) error
	SetStatus(c echo.Context) error
	Delete(c echo.Context) error
	AddHarvest(c echo.Context) error
	ListHarvests(c echo.Context) error
	DeleteHarvest(c echo.Context) error
	CompleteHarvest(c echo.Context) error
	LogActivity(c echo.Context) error
	ListActivities(c echo.Context) error
	DeleteActivity(c echo.Context) error
}
