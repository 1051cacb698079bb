package serviceImp

import (
	"context"
	"strings"
	"time"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	"farmhub/pkg/logging"
	"farmhub/pkg/metrics"
	"farmhub/pkg/notify"
	repo "farmhub/pkg/order/repository"
	"farmhub/pkg/order/service"
)

type orderSvc struct {
	r     repo.OrderRepository
	n     service.Notifier
	admin notify.Recipient
	now   func() time.Time
}

// NewOrderService wires the order flows. admin receives new-order alerts;
// n may be nil, in which case nothing is sent.
func NewOrderService(r repo.OrderRepository, n service.Notifier, admin notify.Recipient, loc *time.Location) service.OrderService {
	if n == nil {
		n = nopNotifier{}
	}
	return &orderSvc{r: r, n: n, admin: admin, now: func() time.Time { return time.Now().In(loc) }}
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, notify.Kind, notify.Recipient, notify.Payload) {}

func (s *orderSvc) today() string { return entities.FormatDate(s.now()) }

func (s *orderSvc) ListOrders(q service.OrderQuery) ([]entities.SalesOrder, error) {
	for _, st := range q.DeliveryStatus {
		if !entities.ValidDeliveryStatus(st) {
			return nil, apperr.Validation("delivery_status", "unknown status "+st)
		}
	}
	if q.PaymentStatus != "" && !entities.ValidPaymentStatus(q.PaymentStatus) {
		return nil, apperr.Validation("payment_status", "must be pending, partial or paid")
	}
	if err := optionalDate("from", q.From); err != nil {
		return nil, err
	}
	if err := optionalDate("to", q.To); err != nil {
		return nil, err
	}
	return s.r.List(repo.OrderFilter{
		CustomerID:       q.CustomerID,
		DeliveryStatuses: q.DeliveryStatus,
		PaymentStatus:    q.PaymentStatus,
		From:             q.From,
		To:               q.To,
	})
}

func (s *orderSvc) GetOrder(id uint) (*entities.SalesOrder, error) {
	o, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "order")
	}
	return o, nil
}

func optionalDate(field, v string) error {
	if v != "" && !entities.ValidDate(v) {
		return apperr.Validation(field, "must be a YYYY-MM-DD date")
	}
	return nil
}

// fill validates in and copies it onto o, defaulting dates and statuses.
func (s *orderSvc) fill(o *entities.SalesOrder, in service.OrderInput) error {
	if in.CustomerID == 0 {
		return apperr.Validation("customer_id", "is required")
	}
	if len(in.Items) == 0 {
		return apperr.Validation("items", "at least one item is required")
	}
	if in.OrderDate == "" {
		in.OrderDate = s.today()
	}
	if !entities.ValidDate(in.OrderDate) {
		return apperr.Validation("order_date", "must be a YYYY-MM-DD date")
	}
	if err := optionalDate("delivery_date", in.DeliveryDate); err != nil {
		return err
	}
	if in.RequestedVia != "" && !entities.ValidChannel(in.RequestedVia) {
		return apperr.Validation("requested_via", "must be whatsapp, phone, in-person or online_form")
	}
	if in.DeliveryStatus == "" {
		in.DeliveryStatus = entities.DeliveryPending
	}
	if !entities.ValidDeliveryStatus(in.DeliveryStatus) {
		return apperr.Validation("delivery_status", "unknown status "+in.DeliveryStatus)
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = entities.PaymentPending
	}
	if !entities.ValidPaymentStatus(in.PaymentStatus) {
		return apperr.Validation("payment_status", "must be pending, partial or paid")
	}
	method, date, err := s.paymentFields(in.PaymentStatus, in.PaymentMethod, in.PaymentDate)
	if err != nil {
		return err
	}

	o.CustomerID = in.CustomerID
	o.Customer = nil
	o.OrderDate = in.OrderDate
	o.RequestedVia = in.RequestedVia
	o.DeliveryDate = in.DeliveryDate
	o.DeliveryAddress = strings.TrimSpace(in.DeliveryAddress)
	o.DeliveryStatus = in.DeliveryStatus
	o.PaymentStatus = in.PaymentStatus
	o.PaymentMethod = method
	o.PaymentDate = date
	o.Notes = in.Notes
	return nil
}

// paymentFields keeps method and date only for paid orders.
func (s *orderSvc) paymentFields(status string, method, date *string) (*string, *string, error) {
	if status != entities.PaymentPaid {
		return nil, nil, nil
	}
	if method == nil || strings.TrimSpace(*method) == "" {
		return nil, nil, apperr.Validation("payment_method", "is required when paid")
	}
	m := strings.TrimSpace(*method)
	d := s.today()
	if date != nil && *date != "" {
		if !entities.ValidDate(*date) {
			return nil, nil, apperr.Validation("payment_date", "must be a YYYY-MM-DD date")
		}
		d = *date
	}
	return &m, &d, nil
}

// adminItems prices admin-entered lines at the given unit price.
func adminItems(tx repo.OrderRepository, in []service.ItemInput) ([]entities.OrderItem, error) {
	ids := make([]uint, 0, len(in))
	for _, it := range in {
		ids = append(ids, it.VarietyID)
	}
	vs, err := tx.FindVarieties(ids)
	if err != nil {
		return nil, err
	}
	items := make([]entities.OrderItem, 0, len(in))
	for _, it := range in {
		if _, ok := vs[it.VarietyID]; !ok {
			return nil, apperr.Validation("items", "unknown variety")
		}
		if err := checkLine(float64(it.Quantity), it.Unit); err != nil {
			return nil, err
		}
		items = append(items, entities.OrderItem{
			VarietyID:    it.VarietyID,
			Quantity:     float64(it.Quantity),
			Unit:         it.Unit,
			PricePerUnit: float64(it.PricePerUnit),
			Subtotal:     lineSubtotal(float64(it.Quantity), float64(it.PricePerUnit)),
		})
	}
	return items, nil
}

func checkLine(qty float64, unit string) error {
	if qty <= 0 {
		return apperr.Validation("items", "quantity must be greater than zero")
	}
	if !entities.ValidUnit(unit) {
		return apperr.Validation("items", "unit must be bunches, kg, grams or pieces")
	}
	return nil
}

// store writes o and replaces its items in one transaction.
func (s *orderSvc) store(o *entities.SalesOrder, in service.OrderInput) error {
	return s.r.Transaction(func(tx repo.OrderRepository) error {
		if _, err := tx.Customers().FindByID(in.CustomerID); err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return apperr.Validation("customer_id", "customer does not exist")
			}
			return err
		}
		items, err := adminItems(tx, in.Items)
		if err != nil {
			return err
		}
		o.TotalAmount = orderTotal(items)
		o.Items = nil
		o.Feedback = nil
		if o.ID == 0 {
			err = tx.Create(o)
		} else {
			err = tx.Save(o)
		}
		if err != nil {
			return err
		}
		return tx.ReplaceItems(o.ID, items)
	})
}

func (s *orderSvc) CreateOrder(in service.OrderInput) (*entities.SalesOrder, error) {
	o := &entities.SalesOrder{}
	if err := s.fill(o, in); err != nil {
		return nil, err
	}
	if err := s.store(o, in); err != nil {
		return nil, err
	}
	metrics.OrderCreated(o.RequestedVia)
	return s.GetOrder(o.ID)
}

// UpdateOrder replaces the order wholesale. Statuses are taken as given so
// admins can correct mistakes; the guarded transitions live in
// SetDeliveryStatus and SetPaymentStatus.
func (s *orderSvc) UpdateOrder(id uint, in service.OrderInput) (*entities.SalesOrder, error) {
	o, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "order")
	}
	if err := s.fill(o, in); err != nil {
		return nil, err
	}
	if err := s.store(o, in); err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}

func (s *orderSvc) DeleteOrder(id uint) error {
	return apperr.OrNotFound(s.r.Transaction(func(tx repo.OrderRepository) error {
		return tx.Delete(id)
	}), "order")
}

func (s *orderSvc) SetDeliveryStatus(ctx context.Context, id uint, status string) (*entities.SalesOrder, error) {
	if !entities.ValidDeliveryStatus(status) {
		return nil, apperr.Validation("delivery_status", "unknown status "+status)
	}
	o, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "order")
	}
	if !entities.CanMoveDelivery(o.DeliveryStatus, status) {
		return nil, apperr.Conflict("order %d cannot move from %s to %s", id, o.DeliveryStatus, status)
	}
	o.DeliveryStatus = status
	if err := s.r.Save(o); err != nil {
		return nil, err
	}
	s.notifyCustomer(ctx, notify.KindOrderStatusUpdate, o)
	return o, nil
}

var paymentMoves = map[string][]string{
	entities.PaymentPending: {entities.PaymentPartial, entities.PaymentPaid},
	entities.PaymentPartial: {entities.PaymentPaid},
}

func (s *orderSvc) SetPaymentStatus(ctx context.Context, id uint, in service.PaymentInput) (*entities.SalesOrder, error) {
	if !entities.ValidPaymentStatus(in.Status) {
		return nil, apperr.Validation("payment_status", "must be pending, partial or paid")
	}
	method, date, err := s.paymentFields(in.Status, in.Method, in.Date)
	if err != nil {
		return nil, err
	}
	o, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "order")
	}
	allowed := false
	for _, next := range paymentMoves[o.PaymentStatus] {
		allowed = allowed || next == in.Status
	}
	if !allowed {
		return nil, apperr.Conflict("payment of order %d cannot move from %s to %s", id, o.PaymentStatus, in.Status)
	}
	o.PaymentStatus = in.Status
	o.PaymentMethod = method
	o.PaymentDate = date
	if err := s.r.Save(o); err != nil {
		return nil, err
	}
	if o.PaymentStatus == entities.PaymentPaid {
		s.notifyCustomer(ctx, notify.KindPaymentReceipt, o)
	}
	return o, nil
}

func (s *orderSvc) notifyCustomer(ctx context.Context, kind notify.Kind, o *entities.SalesOrder) {
	if o.Customer == nil {
		logging.Component("order").WithField("order_id", o.ID).Warn("order has no customer, skipping notification")
		return
	}
	s.n.Notify(ctx, kind, recipientOf(o.Customer), payloadOf(o))
}

// recipientOf prefers the customer's whatsapp number for text messages.
func recipientOf(c *entities.Customer) notify.Recipient {
	phone := c.Phone
	if c.Whatsapp != "" {
		phone = c.Whatsapp
	}
	return notify.Recipient{Name: c.Name, Email: c.Email, Phone: phone}
}

func payloadOf(o *entities.SalesOrder) notify.Payload {
	p := notify.Payload{
		OrderID:         o.ID,
		OrderDate:       o.OrderDate,
		DeliveryDate:    o.DeliveryDate,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryStatus:  o.DeliveryStatus,
		PaymentStatus:   o.PaymentStatus,
		Notes:           o.Notes,
		Total:           o.TotalAmount,
	}
	if o.Customer != nil {
		p.CustomerName = o.Customer.Name
		p.CustomerPhone = o.Customer.Phone
	}
	if o.PaymentMethod != nil {
		p.PaymentMethod = *o.PaymentMethod
	}
	if o.PaymentDate != nil {
		p.PaymentDate = *o.PaymentDate
	}
	for _, it := range o.Items {
		l := notify.Line{Quantity: it.Quantity, Unit: it.Unit, Subtotal: it.Subtotal}
		if it.Variety != nil {
			l.Variety = it.Variety.Name
		}
		p.Items = append(p.Items, l)
	}
	return p
}
