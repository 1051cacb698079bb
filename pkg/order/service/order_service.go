package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"farmhub/entities"
	"farmhub/pkg/notify"
)

// FlexFloat accepts a JSON number or a numeric string. Anything else,
// including null, decodes as 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(b []byte) error {
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		var s string
		if json.Unmarshal(b, &s) != nil {
			*f = 0
			return nil
		}
		if v, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			*f = 0
			return nil
		}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	*f = FlexFloat(v)
	return nil
}

type ItemInput struct {
	VarietyID    uint      `json:"variety_id"`
	Quantity     FlexFloat `json:"quantity"`
	Unit         string    `json:"unit"`
	PricePerUnit FlexFloat `json:"price_per_unit"`
}

// OrderInput replaces every editable field of an order, items included.
type OrderInput struct {
	CustomerID      uint        `json:"customer_id"`
	OrderDate       string      `json:"order_date"`
	RequestedVia    string      `json:"requested_via"`
	DeliveryDate    string      `json:"delivery_date"`
	DeliveryAddress string      `json:"delivery_address"`
	DeliveryStatus  string      `json:"delivery_status"`
	PaymentStatus   string      `json:"payment_status"`
	PaymentMethod   *string     `json:"payment_method"`
	PaymentDate     *string     `json:"payment_date"`
	Notes           string      `json:"notes"`
	Items           []ItemInput `json:"items"`
}

type OrderQuery struct {
	CustomerID     *uint
	DeliveryStatus []string
	PaymentStatus  string
	From           string
	To             string
}

type PaymentInput struct {
	Status string  `json:"payment_status"`
	Method *string `json:"payment_method"`
	Date   *string `json:"payment_date"`
}

type DemandQuery struct {
	Statuses []string
	From     string
	To       string
}

type DemandLine struct {
	VarietyID     uint     `json:"variety_id"`
	VarietyName   string   `json:"variety_name"`
	Unit          string   `json:"unit"`
	TotalQuantity float64  `json:"total_quantity"`
	OrderCount    int64    `json:"order_count"`
	Customers     []string `json:"customers"`
}

type FeedbackInput struct {
	CustomerName     string `json:"customer_name"`
	Rating           *int   `json:"rating"`
	DeliveryQuality  *int   `json:"delivery_quality"`
	ProductFreshness *int   `json:"product_freshness"`
	Comments         string `json:"comments"`
}

type FeedbackEligibility struct {
	CanSubmit bool   `json:"can_submit"`
	Reason    string `json:"reason,omitempty"`
}

type PublicItem struct {
	VarietyID uint      `json:"variety_id"`
	Quantity  FlexFloat `json:"quantity"`
	Unit      string    `json:"unit"`
}

type PublicOrderInput struct {
	CustomerName    string       `json:"customer_name"`
	Phone           string       `json:"phone"`
	DeliveryAddress string       `json:"delivery_address"`
	DeliveryDate    string       `json:"delivery_date"`
	Notes           string       `json:"notes"`
	Items           []PublicItem `json:"items"`
}

type PublicOrderResult struct {
	OrderID     uint    `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
}

type OrderService interface {
	ListOrders(q OrderQuery) ([]entities.SalesOrder, error)
	GetOrder(id uint) (*entities.SalesOrder, error)
	CreateOrder(in OrderInput) (*entities.SalesOrder, error)
	UpdateOrder(id uint, in OrderInput) (*entities.SalesOrder, error)
	DeleteOrder(id uint) error
	SetDeliveryStatus(ctx context.Context, id uint, status string) (*entities.SalesOrder, error)
	SetPaymentStatus(ctx context.Context, id uint, in PaymentInput) (*entities.SalesOrder, error)

	CropDemand(q DemandQuery) ([]DemandLine, error)

	FeedbackEligibility(orderID uint) (*FeedbackEligibility, error)
	SubmitFeedback(orderID uint, in FeedbackInput) (*entities.OrderFeedback, error)
	ListFeedback() ([]entities.OrderFeedback, error)

	SubmitPublicOrder(ctx context.Context, in PublicOrderInput) (*PublicOrderResult, error)
}

// Notifier is the delivery side the order flows report to.
type Notifier interface {
	Notify(ctx context.Context, kind notify.Kind, to notify.Recipient, p notify.Payload)
}
