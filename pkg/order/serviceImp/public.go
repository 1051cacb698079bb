package serviceImp

import (
	"context"
	"strings"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	customerService "farmhub/pkg/customer/service"
	customerSvcImp "farmhub/pkg/customer/serviceImp"
	"farmhub/pkg/metrics"
	"farmhub/pkg/notify"
	repo "farmhub/pkg/order/repository"
	"farmhub/pkg/order/service"
)

// SubmitPublicOrder records an order from the storefront form. The customer
// is matched by phone, prices come from the catalog, and the order waits as
// unconfirmed until the farm accepts it.
func (s *orderSvc) SubmitPublicOrder(ctx context.Context, in service.PublicOrderInput) (*service.PublicOrderResult, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Validation("items", "at least one item is required")
	}
	for _, it := range in.Items {
		if err := checkLine(float64(it.Quantity), it.Unit); err != nil {
			return nil, err
		}
	}
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return nil, apperr.Validation("delivery_address", "is required")
	}
	if !entities.ValidDate(in.DeliveryDate) {
		return nil, apperr.Validation("delivery_date", "must be a YYYY-MM-DD date")
	}

	var o *entities.SalesOrder
	err := s.r.Transaction(func(tx repo.OrderRepository) error {
		c, _, err := customerSvcImp.UpsertByPhone(tx.Customers(), customerService.ContactInput{
			Name:    in.CustomerName,
			Phone:   in.Phone,
			Address: in.DeliveryAddress,
		})
		if err != nil {
			return err
		}
		ids := make([]uint, 0, len(in.Items))
		for _, it := range in.Items {
			ids = append(ids, it.VarietyID)
		}
		vs, err := tx.FindVarieties(ids)
		if err != nil {
			return err
		}
		items := make([]entities.OrderItem, 0, len(in.Items))
		for _, it := range in.Items {
			v, ok := vs[it.VarietyID]
			if !ok {
				return apperr.Validation("items", "unknown variety")
			}
			price, sub := publicSubtotal(v, float64(it.Quantity), it.Unit)
			items = append(items, entities.OrderItem{
				VarietyID:    v.ID,
				Quantity:     float64(it.Quantity),
				Unit:         it.Unit,
				PricePerUnit: price,
				Subtotal:     sub,
			})
		}
		o = &entities.SalesOrder{
			CustomerID:      c.ID,
			OrderDate:       s.today(),
			RequestedVia:    entities.ViaOnlineForm,
			DeliveryDate:    in.DeliveryDate,
			DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
			DeliveryStatus:  entities.DeliveryUnconfirmed,
			PaymentStatus:   entities.PaymentPending,
			Notes:           strings.TrimSpace(in.Notes),
			TotalAmount:     orderTotal(items),
		}
		if err := tx.Create(o); err != nil {
			return err
		}
		return tx.ReplaceItems(o.ID, items)
	})
	if err != nil {
		return nil, err
	}
	metrics.OrderCreated(entities.ViaOnlineForm)

	full, err := s.r.FindByID(o.ID)
	if err != nil {
		return nil, err
	}
	if s.admin.Email != "" || s.admin.Phone != "" {
		s.n.Notify(ctx, notify.KindNewOrderAdmin, s.admin, payloadOf(full))
	}
	s.notifyCustomer(ctx, notify.KindOrderConfirmation, full)
	return &service.PublicOrderResult{OrderID: full.ID, TotalAmount: full.TotalAmount}, nil
}
