package controllerImp

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	"farmhub/pkg/auth/controller"
	"farmhub/pkg/auth/service"
	"farmhub/pkg/middleware"
)

type AuthCtrl struct{ s service.AuthService }

var _ controller.AuthController = (*AuthCtrl)(nil)

func New(s service.AuthService) *AuthCtrl { return &AuthCtrl{s} }

func (h *AuthCtrl) Login(c echo.Context) error {
	var in service.Credentials
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	res, err := h.s.Login(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AuthCtrl) Register(c echo.Context) error {
	var in service.Credentials
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	u, err := h.s.Register(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *AuthCtrl) Logout(c echo.Context) error {
	if err := h.s.Logout(middleware.CurrentToken(c)); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthCtrl) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.CurrentUser(c))
}

func (h *AuthCtrl) ChangePassword(c echo.Context) error {
	var in service.PasswordChange
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	u := middleware.CurrentUser(c)
	if err := h.s.ChangePassword(u.ID, middleware.CurrentToken(c), in); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthCtrl) ListUsers(c echo.Context) error {
	list, err := h.s.ListUsers()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

type roleReq struct {
	Role string `json:"role"`
}

func (h *AuthCtrl) SetRole(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var req roleReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	u, err := h.s.SetRole(uint(id), req.Role)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
