package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	"farmhub/pkg/crop/controller"
	"farmhub/pkg/crop/service"
)

type CropCtrl struct{ s service.CropService }

var _ controller.CropController = (*CropCtrl)(nil)

func New(s service.CropService) *CropCtrl { return &CropCtrl{s} }

func (h *CropCtrl) List(c echo.Context) error {
	q := service.CropQuery{Status: c.QueryParam("status")}
	var err error
	if q.RaisedBedID, err = optionalID(c.QueryParam("raised_bed_id")); err != nil {
		return apperr.BadRequest(c, "invalid raised_bed_id")
	}
	if q.VarietyID, err = optionalID(c.QueryParam("variety_id")); err != nil {
		return apperr.BadRequest(c, "invalid variety_id")
	}
	list, err := h.s.ListCrops(q)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	out, err := h.s.GetCrop(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Create(c echo.Context) error {
	var in service.CreateCropInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.CreateCrop(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) Patch(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.CropPatch
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.UpdateCrop(id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *CropCtrl) SetStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in statusReq
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.SetCropStatus(id, in.Status)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	if err := h.s.DeleteCrop(id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CropCtrl) AddHarvest(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.HarvestInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.AddHarvestRecord(id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) ListHarvests(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	out, err := h.s.ListHarvestRecords(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) DeleteHarvest(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	rid, err := parseID(c.Param("record_id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid record_id")
	}
	if err := h.s.DeleteHarvestRecord(id, rid); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CropCtrl) CompleteHarvest(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	out, err := h.s.CompleteHarvest(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) LogActivity(c echo.Context) error {
	var in service.ActivityInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	// nested route: /crops/:id/activities
	if p := c.Param("id"); p != "" {
		id, err := parseID(p)
		if err != nil {
			return apperr.BadRequest(c, "invalid id")
		}
		in.CropID = id
	}
	out, err := h.s.LogActivity(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CropCtrl) ListActivities(c echo.Context) error {
	q := service.ActivityQuery{
		From: c.QueryParam("from"),
		To:   c.QueryParam("to"),
		Type: c.QueryParam("type"),
	}
	raw := c.Param("id")
	if raw == "" {
		raw = c.QueryParam("crop_id")
	}
	var err error
	if q.CropID, err = optionalID(raw); err != nil {
		return apperr.BadRequest(c, "invalid crop id")
	}
	out, err := h.s.ListActivities(q)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) DeleteActivity(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	if err := h.s.DeleteActivity(id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	return uint(n), err
}

func optionalID(s string) (*uint, error) {
	if s == "" {
		return nil, nil
	}
	id, err := parseID(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
