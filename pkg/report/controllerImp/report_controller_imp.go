package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	orderCtrl "farmhub/pkg/order/controllerImp"
	"farmhub/pkg/report/controller"
	"farmhub/pkg/report/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportCtrl struct{ s service.ReportService }

var _ controller.ReportController = (*ReportCtrl)(nil)

func New(s service.ReportService) *ReportCtrl { return &ReportCtrl{s} }

func (h *ReportCtrl) Dashboard(c echo.Context) error {
	d, err := h.s.Dashboard()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *ReportCtrl) Varieties(c echo.Context) error {
	rows, err := h.s.VarietyReport()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportCtrl) Customers(c echo.Context) error {
	rows, err := h.s.CustomerReport()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportCtrl) DashboardXLSX(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.DashboardXLSX(&buf); err != nil {
		return apperr.Respond(c, err)
	}
	return attachment(c, "dashboard", buf.Bytes())
}

func (h *ReportCtrl) CropDemandXLSX(c echo.Context) error {
	var buf bytes.Buffer
	if err := h.s.CropDemandXLSX(&buf, orderCtrl.DemandQuery(c)); err != nil {
		return apperr.Respond(c, err)
	}
	return attachment(c, "crop-demand", buf.Bytes())
}

func attachment(c echo.Context, base string, body []byte) error {
	name := fmt.Sprintf("%s-%s.xlsx", base, time.Now().Format("20060102"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))
	return c.Blob(http.StatusOK, xlsxMIME, body)
}
