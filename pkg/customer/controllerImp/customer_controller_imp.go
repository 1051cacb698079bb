package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	"farmhub/pkg/customer/controller"
	"farmhub/pkg/customer/service"
)

type CustomerCtrl struct{ s service.CustomerService }

var _ controller.CustomerController = (*CustomerCtrl)(nil)

func New(s service.CustomerService) *CustomerCtrl { return &CustomerCtrl{s} }

func (h *CustomerCtrl) List(c echo.Context) error {
	list, err := h.s.ListCustomers(c.QueryParam("search"))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *CustomerCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	out, err := h.s.GetCustomer(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerCtrl) Create(c echo.Context) error {
	var in service.CustomerInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.CreateCustomer(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *CustomerCtrl) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.CustomerInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.UpdateCustomer(id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CustomerCtrl) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	if err := h.s.DeleteCustomer(id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(s string) (uint, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	return uint(n), err
}
