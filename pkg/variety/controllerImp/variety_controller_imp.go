package controllerImp

import (
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	"farmhub/pkg/variety/controller"
	"farmhub/pkg/variety/service"
)

type VarietyCtrl struct{ s service.VarietyService }

var _ controller.VarietyController = (*VarietyCtrl)(nil)

func New(s service.VarietyService) *VarietyCtrl { return &VarietyCtrl{s} }

func (h *VarietyCtrl) List(c echo.Context) error {
	list, err := h.s.ListVarieties()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *VarietyCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	v, err := h.s.GetVariety(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VarietyCtrl) Create(c echo.Context) error {
	var in service.VarietyInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	v, err := h.s.CreateVariety(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, v)
}

func (h *VarietyCtrl) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.VarietyInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	v, err := h.s.UpdateVariety(id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *VarietyCtrl) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	if err := h.s.DeleteVariety(id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Import takes a multipart upload in field "file" (.csv or .xlsx).
func (h *VarietyCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return apperr.BadRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return apperr.BadRequest(c, "cannot read upload")
	}
	defer f.Close()

	res, err := h.s.ImportVarieties(f, filepath.Ext(fh.Filename))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *VarietyCtrl) PriceList(c echo.Context) error {
	list, err := h.s.PriceList()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	return uint(n), err
}
