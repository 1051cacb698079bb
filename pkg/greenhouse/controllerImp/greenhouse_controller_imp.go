package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	"farmhub/pkg/greenhouse/controller"
	"farmhub/pkg/greenhouse/service"
)

type GreenhouseCtrl struct{ s service.GreenhouseService }

var _ controller.GreenhouseController = (*GreenhouseCtrl)(nil)

func New(s service.GreenhouseService) *GreenhouseCtrl { return &GreenhouseCtrl{s} }

func (h *GreenhouseCtrl) List(c echo.Context) error {
	list, err := h.s.ListGreenhouses()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *GreenhouseCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	g, err := h.s.GetGreenhouse(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *GreenhouseCtrl) Create(c echo.Context) error {
	var req service.CreateGreenhouseInput
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	g, err := h.s.CreateGreenhouse(req)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GreenhouseCtrl) ListBeds(c echo.Context) error {
	var ghID *uint
	if v := c.QueryParam("greenhouse_id"); v != "" {
		id, err := parseID(v)
		if err != nil {
			return apperr.BadRequest(c, "invalid greenhouse_id")
		}
		ghID = &id
	}
	beds, err := h.s.ListBeds(ghID, c.QueryParam("status"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, beds)
}

func (h *GreenhouseCtrl) GetBed(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	b, err := h.s.GetBed(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

type bedStatusReq struct {
	Status string `json:"status"`
}

func (h *GreenhouseCtrl) SetBedStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var req bedStatusReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	b, err := h.s.SetBedStatus(id, req.Status)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	return uint(n), err
}
