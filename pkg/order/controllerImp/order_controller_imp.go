package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"farmhub/pkg/apperr"
	"farmhub/pkg/order/controller"
	"farmhub/pkg/order/service"
)

type OrderCtrl struct{ s service.OrderService }

var _ controller.OrderController = (*OrderCtrl)(nil)

func New(s service.OrderService) *OrderCtrl { return &OrderCtrl{s} }

func (h *OrderCtrl) List(c echo.Context) error {
	q := service.OrderQuery{
		DeliveryStatus: splitCSV(c.QueryParam("delivery_status")),
		PaymentStatus:  c.QueryParam("payment_status"),
		From:           c.QueryParam("from"),
		To:             c.QueryParam("to"),
	}
	var err error
	if q.CustomerID, err = optionalID(c.QueryParam("customer_id")); err != nil {
		return apperr.BadRequest(c, "invalid customer_id")
	}
	list, err := h.s.ListOrders(q)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

func (h *OrderCtrl) Get(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	o, err := h.s.GetOrder(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) Create(c echo.Context) error {
	var in service.OrderInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	o, err := h.s.CreateOrder(in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OrderCtrl) Update(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.OrderInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	o, err := h.s.UpdateOrder(id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) Delete(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	if err := h.s.DeleteOrder(id); err != nil {
		return apperr.Respond(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type deliveryReq struct {
	Status string `json:"delivery_status"`
}

func (h *OrderCtrl) SetDeliveryStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var req deliveryReq
	if err := c.Bind(&req); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	o, err := h.s.SetDeliveryStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) SetPaymentStatus(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.PaymentInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	o, err := h.s.SetPaymentStatus(c.Request().Context(), id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OrderCtrl) CropDemand(c echo.Context) error {
	out, err := h.s.CropDemand(DemandQuery(c))
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// DemandQuery reads ?status=a,b&from=&to= into a demand query.
func DemandQuery(c echo.Context) service.DemandQuery {
	return service.DemandQuery{
		Statuses: splitCSV(c.QueryParam("status")),
		From:     c.QueryParam("from"),
		To:       c.QueryParam("to"),
	}
}

func (h *OrderCtrl) ListFeedback(c echo.Context) error {
	list, err := h.s.ListFeedback()
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, list)
}

// public

func (h *OrderCtrl) SubmitPublic(c echo.Context) error {
	var in service.PublicOrderInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	out, err := h.s.SubmitPublicOrder(c.Request().Context(), in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OrderCtrl) FeedbackEligibility(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	out, err := h.s.FeedbackEligibility(id)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderCtrl) SubmitFeedback(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return apperr.BadRequest(c, "invalid id")
	}
	var in service.FeedbackInput
	if err := c.Bind(&in); err != nil {
		return apperr.BadRequest(c, "invalid json")
	}
	fb, err := h.s.SubmitFeedback(id, in)
	if err != nil {
		return apperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, fb)
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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
