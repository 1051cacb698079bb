package entities

import "time"

const (
	ViaWhatsapp   = "whatsapp"
	ViaPhone      = "phone"
	ViaInPerson   = "in-person"
	ViaOnlineForm = "online_form"
)

func ValidChannel(v string) bool {
	switch v {
	case ViaWhatsapp, ViaPhone, ViaInPerson, ViaOnlineForm:
		return true
	}
	return false
}

const (
	DeliveryUnconfirmed = "unconfirmed"
	DeliveryPending     = "pending"
	DeliveryPacked      = "packed"
	DeliveryDelivered   = "delivered"
	DeliveryCancelled   = "cancelled"
)

// deliveryRank orders the forward lifecycle; cancelled sits outside it.
var deliveryRank = map[string]int{
	DeliveryUnconfirmed: 0,
	DeliveryPending:     1,
	DeliveryPacked:      2,
	DeliveryDelivered:   3,
}

func ValidDeliveryStatus(s string) bool {
	_, ok := deliveryRank[s]
	return ok || s == DeliveryCancelled
}

// CanMoveDelivery reports whether an order may go from one delivery status
// to another. Forward moves may skip steps; cancelled is reachable from any
// state before delivered; delivered and cancelled are terminal.
func CanMoveDelivery(from, to string) bool {
	if from == DeliveryDelivered || from == DeliveryCancelled {
		return false
	}
	if to == DeliveryCancelled {
		return true
	}
	fr, ok1 := deliveryRank[from]
	tr, ok2 := deliveryRank[to]
	return ok1 && ok2 && tr > fr
}

const (
	PaymentPending = "pending"
	PaymentPartial = "partial"
	PaymentPaid    = "paid"
)

func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentPartial || s == PaymentPaid
}

type SalesOrder struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CustomerID      uint      `gorm:"not null;index" json:"customer_id"`
	OrderDate       string    `gorm:"not null;index" json:"order_date"`
	RequestedVia    string    `json:"requested_via"`
	DeliveryDate    string    `gorm:"index" json:"delivery_date"`
	DeliveryAddress string    `json:"delivery_address"`
	TotalAmount     float64   `json:"total_amount"`
	DeliveryStatus  string    `gorm:"not null;default:pending;index" json:"delivery_status"`
	PaymentStatus   string    `gorm:"not null;default:pending" json:"payment_status"`
	PaymentMethod   *string   `json:"payment_method"`
	PaymentDate     *string   `json:"payment_date"`
	Notes           string    `json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Customer *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	Feedback *OrderFeedback `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"feedback,omitempty"`
}

func (SalesOrder) TableName() string { return "sales_orders" }

type OrderItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OrderID      uint      `gorm:"not null;index" json:"order_id"`
	VarietyID    uint      `gorm:"not null;index" json:"variety_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `gorm:"not null" json:"unit"`
	PricePerUnit float64   `json:"price_per_unit"`
	Subtotal     float64   `json:"subtotal"`
	CreatedAt    time.Time `json:"created_at"`

	Variety *Variety `gorm:"foreignKey:VarietyID" json:"variety,omitempty"`
}

func (OrderItem) TableName() string { return "order_items" }

type OrderFeedback struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderID          uint      `gorm:"not null;uniqueIndex" json:"order_id"`
	CustomerName     string    `json:"customer_name"`
	Rating           int       `gorm:"not null" json:"rating"`
	DeliveryQuality  *int      `json:"delivery_quality"`
	ProductFreshness *int      `json:"product_freshness"`
	Comments         string    `json:"comments"`
	CreatedAt        time.Time `json:"created_at"`
}

func (OrderFeedback) TableName() string { return "order_feedbacks" }
