package serviceImp

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmhub/database"
	"farmhub/entities"
	"farmhub/pkg/apperr"
	"farmhub/pkg/notify"
	"farmhub/pkg/order/repositoryImp"
	"farmhub/pkg/order/service"
)

type sent struct {
	kind notify.Kind
	to   notify.Recipient
	p    notify.Payload
}

type recorder struct{ got []sent }

func (r *recorder) Notify(_ context.Context, k notify.Kind, to notify.Recipient, p notify.Payload) {
	r.got = append(r.got, sent{k, to, p})
}

func (r *recorder) kinds() []notify.Kind {
	var out []notify.Kind
	for _, s := range r.got {
		out = append(out, s.kind)
	}
	return out
}

type fixture struct {
	s       *orderSvc
	db      *gorm.DB
	n       *recorder
	asha    uint
	ravi    uint
	methi   uint
	spinach uint
}

func fp(v float64) *float64 { return &v }
func sp(v string) *string { return &v }
func ip(v int) *int { return &v }

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := database.OpenTest(t)
	n := &recorder{}
	admin := notify.Recipient{Name: "Farm", Email: "admin@farm.test"}
	s := NewOrderService(repositoryImp.New(db), n, admin, time.UTC).(*orderSvc)
	s.now = func() time.Time { return time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC) }

	asha := entities.Customer{Name: "Asha", Phone: "9876543210", Email: "asha@example.com"}
	ravi := entities.Customer{Name: "Ravi", Phone: "9123456780"}
	require.NoError(t, db.Create(&asha).Error)
	require.NoError(t, db.Create(&ravi).Error)
	methi := entities.Variety{Name: "Methi", DaysToHarvest: 30, PricePerBunch: fp(20), PricePer100g: fp(50)}
	spinach := entities.Variety{Name: "Spinach", DaysToHarvest: 45, PricePerKg: fp(80)}
	require.NoError(t, db.Create(&methi).Error)
	require.NoError(t, db.Create(&spinach).Error)
	return &fixture{s: s, db: db, n: n, asha: asha.ID, ravi: ravi.ID, methi: methi.ID, spinach: spinach.ID}
}

func (f *fixture) order(t *testing.T, customer uint, delivery, date string, items ...service.ItemInput) *entities.SalesOrder {
	t.Helper()
	o, err := f.s.CreateOrder(service.OrderInput{
		CustomerID:     customer,
		RequestedVia:   entities.ViaWhatsapp,
		DeliveryDate:   date,
		DeliveryStatus: delivery,
		Items:          items,
	})
	require.NoError(t, err)
	return o
}

func item(variety uint, qty float64, unit string, price float64) service.ItemInput {
	return service.ItemInput{VarietyID: variety, Quantity: service.FlexFloat(qty), Unit: unit, PricePerUnit: service.FlexFloat(price)}
}

func sumSubtotals(o *entities.SalesOrder) float64 {
	var sum float64
	for _, it := range o.Items {
		sum += it.Subtotal
	}
	return sum
}

func TestOrderTotalMatchesItemsAfterCreateAndReplace(t *testing.T) {
	f := newFixture(t)
	o := f.order(t, f.asha, "", "2024-03-16",
		item(f.methi, 2, entities.UnitBunches, 30.5),
		item(f.spinach, 0.5, entities.UnitKg, 120))

	require.Len(t, o.Items, 2)
	assert.InDelta(t, 61.0, o.Items[0].Subtotal, 1e-9)
	assert.InDelta(t, 60.0, o.Items[1].Subtotal, 1e-9)
	assert.InDelta(t, 121.0, o.TotalAmount, 1e-9)
	assert.InDelta(t, sumSubtotals(o), o.TotalAmount, 1e-9)
	assert.Equal(t, "2024-03-15", o.OrderDate)
	assert.Equal(t, entities.DeliveryPending, o.DeliveryStatus)
	assert.Equal(t, entities.PaymentPending, o.PaymentStatus)

	up, err := f.s.UpdateOrder(o.ID, service.OrderInput{
		CustomerID: f.ravi,
		OrderDate:  "2024-03-14",
		Items:      []service.ItemInput{item(f.methi, 3, entities.UnitBunches, 10.333)},
	})
	require.NoError(t, err)
	require.Len(t, up.Items, 1)
	assert.InDelta(t, 30.999, up.TotalAmount, 1e-9)
	assert.InDelta(t, sumSubtotals(up), up.TotalAmount, 1e-9)
	require.NotNil(t, up.Customer)
	assert.Equal(t, "Ravi", up.Customer.Name)

	var count int64
	require.NoError(t, f.db.Model(&entities.OrderItem{}).Where("order_id = ?", o.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOrderSubtotalsAreExactProducts(t *testing.T) {
	f := newFixture(t)
	o := f.order(t, f.asha, "", "2024-03-16",
		item(f.spinach, 0.333, entities.UnitKg, 3),
		item(f.spinach, 0.333, entities.UnitKg, 3),
		item(f.spinach, 0.333, entities.UnitKg, 3))

	require.Len(t, o.Items, 3)
	for _, it := range o.Items {
		assert.InDelta(t, 0.999, it.Subtotal, 1e-9)
	}
	assert.InDelta(t, 2.997, o.TotalAmount, 1e-9)

	got, err := f.s.GetOrder(o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.997, got.TotalAmount, 1e-9)
}

func TestOrderRoundTrip(t *testing.T) {
	f := newFixture(t)
	in := service.OrderInput{
		CustomerID:      f.asha,
		OrderDate:       "2024-03-10",
		RequestedVia:    entities.ViaPhone,
		DeliveryDate:    "2024-03-12",
		DeliveryAddress: "12 Lake Road",
		PaymentStatus:   entities.PaymentPaid,
		PaymentMethod:   sp("upi"),
		Notes:           "ring twice",
		Items:           []service.ItemInput{item(f.methi, 4, entities.UnitBunches, 25)},
	}
	created, err := f.s.CreateOrder(in)
	require.NoError(t, err)

	got, err := f.s.GetOrder(created.ID)
	require.NoError(t, err)
	assert.Equal(t, f.asha, got.CustomerID)
	assert.Equal(t, "2024-03-10", got.OrderDate)
	assert.Equal(t, entities.ViaPhone, got.RequestedVia)
	assert.Equal(t, "2024-03-12", got.DeliveryDate)
	assert.Equal(t, "12 Lake Road", got.DeliveryAddress)
	assert.Equal(t, "ring twice", got.Notes)
	require.NotNil(t, got.PaymentMethod)
	assert.Equal(t, "upi", *got.PaymentMethod)
	require.NotNil(t, got.PaymentDate)
	assert.Equal(t, "2024-03-15", *got.PaymentDate, "payment date defaults to today")
	require.Len(t, got.Items, 1)
	assert.Equal(t, "Methi", got.Items[0].Variety.Name)
	assert.InDelta(t, 100.0, got.TotalAmount, 1e-9)
}

func TestCreateOrderValidation(t *testing.T) {
	f := newFixture(t)
	cases := []struct {
		name  string
		in    service.OrderInput
		field string
	}{
		{"no items", service.OrderInput{CustomerID: f.asha}, "items"},
		{"unknown customer", service.OrderInput{CustomerID: 999, Items: []service.ItemInput{item(f.methi, 1, entities.UnitBunches, 1)}}, "customer_id"},
		{"unknown variety", service.OrderInput{CustomerID: f.asha, Items: []service.ItemInput{item(999, 1, entities.UnitBunches, 1)}}, "items"},
		{"bad unit", service.OrderInput{CustomerID: f.asha, Items: []service.ItemInput{item(f.methi, 1, "crates", 1)}}, "items"},
		{"paid without method", service.OrderInput{CustomerID: f.asha, PaymentStatus: entities.PaymentPaid, Items: []service.ItemInput{item(f.methi, 1, entities.UnitBunches, 1)}}, "payment_method"},
		{"bad channel", service.OrderInput{CustomerID: f.asha, RequestedVia: "fax", Items: []service.ItemInput{item(f.methi, 1, entities.UnitBunches, 1)}}, "requested_via"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.s.CreateOrder(tc.in)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.KindValidation), err.Error())
			var ae *apperr.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tc.field, ae.Field)
		})
	}
	var n int64
	require.NoError(t, f.db.Model(&entities.SalesOrder{}).Count(&n).Error)
	assert.Zero(t, n, "failed creates leave nothing behind")
}

func TestFlexFloatDecoding(t *testing.T) {
	var in service.ItemInput
	require.NoError(t, json.Unmarshal([]byte(`{"quantity":"2.5","price_per_unit":"abc"}`), &in))
	assert.InDelta(t, 2.5, float64(in.Quantity), 1e-9)
	assert.Zero(t, float64(in.PricePerUnit))

	require.NoError(t, json.Unmarshal([]byte(`{"quantity":3,"price_per_unit":null}`), &in))
	assert.InDelta(t, 3.0, float64(in.Quantity), 1e-9)
	assert.Zero(t, float64(in.PricePerUnit))
}

func TestPublicOrderGramPricing(t *testing.T) {
	f := newFixture(t)
	res, err := f.s.SubmitPublicOrder(context.Background(), service.PublicOrderInput{
		CustomerName:    "Meera",
		Phone:           "+91 99887 76655",
		DeliveryAddress: "4 Hill St",
		DeliveryDate:    "2024-03-17",
		Items: []service.PublicItem{
			{VarietyID: f.methi, Quantity: 250, Unit: entities.UnitGrams},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 125.0, res.TotalAmount, 1e-9)

	o, err := f.s.GetOrder(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryUnconfirmed, o.DeliveryStatus)
	assert.Equal(t, entities.PaymentPending, o.PaymentStatus)
	assert.Equal(t, entities.ViaOnlineForm, o.RequestedVia)
	assert.Equal(t, "2024-03-15", o.OrderDate)
	require.Len(t, o.Items, 1)
	assert.InDelta(t, 50.0, o.Items[0].PricePerUnit, 1e-9)
	assert.InDelta(t, 125.0, o.Items[0].Subtotal, 1e-9)
	require.NotNil(t, o.Customer)
	assert.Equal(t, "9988776655", o.Customer.Phone)

	assert.Equal(t, []notify.Kind{notify.KindNewOrderAdmin, notify.KindOrderConfirmation}, f.n.kinds())
	assert.Equal(t, "admin@farm.test", f.n.got[0].to.Email)
	assert.Equal(t, "9988776655", f.n.got[1].to.Phone)
	assert.Equal(t, "Methi", f.n.got[1].p.Items[0].Variety)
}

func TestPublicOrderUnpricedUnitIsFree(t *testing.T) {
	f := newFixture(t)
	res, err := f.s.SubmitPublicOrder(context.Background(), service.PublicOrderInput{
		CustomerName:    "Meera",
		Phone:           "9988776655",
		DeliveryAddress: "4 Hill St",
		DeliveryDate:    "2024-03-17",
		Items: []service.PublicItem{
			{VarietyID: f.spinach, Quantity: 2, Unit: entities.UnitBunches},
			{VarietyID: f.spinach, Quantity: 1.5, Unit: entities.UnitKg},
		},
	})
	require.NoError(t, err)
	assert.InDelta(t, 120.0, res.TotalAmount, 1e-9)
}

func TestPublicOrderReusesCustomerByPhone(t *testing.T) {
	f := newFixture(t)
	res, err := f.s.SubmitPublicOrder(context.Background(), service.PublicOrderInput{
		CustomerName:    "Asha K",
		Phone:           "098765 43210",
		DeliveryAddress: "New flat 7",
		DeliveryDate:    "2024-03-18",
		Items:           []service.PublicItem{{VarietyID: f.methi, Quantity: 1, Unit: entities.UnitBunches}},
	})
	require.NoError(t, err)

	o, err := f.s.GetOrder(res.OrderID)
	require.NoError(t, err)
	assert.Equal(t, f.asha, o.CustomerID)
	assert.Equal(t, "Asha K", o.Customer.Name)
	assert.Equal(t, "New flat 7", o.Customer.Address)

	var n int64
	require.NoError(t, f.db.Model(&entities.Customer{}).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestPublicOrderRejectsBadInput(t *testing.T) {
	f := newFixture(t)
	base := service.PublicOrderInput{
		CustomerName:    "Meera",
		Phone:           "9988776655",
		DeliveryAddress: "4 Hill St",
		DeliveryDate:    "2024-03-17",
		Items:           []service.PublicItem{{VarietyID: f.methi, Quantity: 1, Unit: entities.UnitBunches}},
	}
	mut := []func(*service.PublicOrderInput){
		func(in *service.PublicOrderInput) { in.Items = nil },
		func(in *service.PublicOrderInput) { in.Phone = "12345" },
		func(in *service.PublicOrderInput) { in.CustomerName = " " },
		func(in *service.PublicOrderInput) { in.DeliveryDate = "tomorrow" },
		func(in *service.PublicOrderInput) { in.Items[0].VarietyID = 999 },
	}
	for i, m := range mut {
		in := base
		in.Items = append([]service.PublicItem(nil), base.Items...)
		m(&in)
		_, err := f.s.SubmitPublicOrder(context.Background(), in)
		assert.True(t, apperr.Is(err, apperr.KindValidation), "case %d: %v", i, err)
	}
	var n int64
	require.NoError(t, f.db.Model(&entities.Customer{}).Count(&n).Error)
	assert.EqualValues(t, 2, n, "rolled back customer upserts")
	assert.Empty(t, f.n.got)
}

func TestDeliveryTransitions(t *testing.T) {
	f := newFixture(t)
	o := f.order(t, f.asha, "", "", item(f.methi, 1, entities.UnitBunches, 10))
	ctx := context.Background()

	_, err := f.s.SetDeliveryStatus(ctx, o.ID, entities.DeliveryPacked)
	require.NoError(t, err)
	_, err = f.s.SetDeliveryStatus(ctx, o.ID, entities.DeliveryPending)
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	_, err = f.s.SetDeliveryStatus(ctx, o.ID, "lost")
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	got, err := f.s.SetDeliveryStatus(ctx, o.ID, entities.DeliveryDelivered)
	require.NoError(t, err)
	assert.Equal(t, entities.DeliveryDelivered, got.DeliveryStatus)
	_, err = f.s.SetDeliveryStatus(ctx, o.ID, entities.DeliveryCancelled)
	assert.True(t, apperr.Is(err, apperr.KindConflict), "delivered is terminal")

	_, err = f.s.SetDeliveryStatus(ctx, 999, entities.DeliveryPacked)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	assert.Equal(t, []notify.Kind{notify.KindOrderStatusUpdate, notify.KindOrderStatusUpdate}, f.n.kinds())
	assert.Equal(t, "asha@example.com", f.n.got[0].to.Email)
}

func TestPaymentTransitions(t *testing.T) {
	f := newFixture(t)
	o := f.order(t, f.asha, "", "", item(f.methi, 1, entities.UnitBunches, 10))
	ctx := context.Background()

	got, err := f.s.SetPaymentStatus(ctx, o.ID, service.PaymentInput{Status: entities.PaymentPartial, Method: sp("cash")})
	require.NoError(t, err)
	assert.Nil(t, got.PaymentMethod, "method only kept when paid")
	assert.Nil(t, got.PaymentDate)

	_, err = f.s.SetPaymentStatus(ctx, o.ID, service.PaymentInput{Status: entities.PaymentPaid})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	got, err = f.s.SetPaymentStatus(ctx, o.ID, service.PaymentInput{Status: entities.PaymentPaid, Method: sp("upi"), Date: sp("2024-03-14")})
	require.NoError(t, err)
	assert.Equal(t, "upi", *got.PaymentMethod)
	assert.Equal(t, "2024-03-14", *got.PaymentDate)

	_, err = f.s.SetPaymentStatus(ctx, o.ID, service.PaymentInput{Status: entities.PaymentPending})
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	assert.Equal(t, []notify.Kind{notify.KindPaymentReceipt}, f.n.kinds())
}

func TestCustomerNotificationsPreferWhatsapp(t *testing.T) {
	f := newFixture(t)
	meena := entities.Customer{Name: "Meena", Phone: "9000000001", Whatsapp: "9000000002"}
	require.NoError(t, f.db.Create(&meena).Error)
	ctx := context.Background()

	a := f.order(t, meena.ID, "", "", item(f.methi, 1, entities.UnitBunches, 10))
	b := f.order(t, f.ravi, "", "", item(f.methi, 1, entities.UnitBunches, 10))
	_, err := f.s.SetDeliveryStatus(ctx, a.ID, entities.DeliveryPacked)
	require.NoError(t, err)
	_, err = f.s.SetDeliveryStatus(ctx, b.ID, entities.DeliveryPacked)
	require.NoError(t, err)

	require.Len(t, f.n.got, 2)
	assert.Equal(t, "9000000002", f.n.got[0].to.Phone)
	assert.Equal(t, "9123456780", f.n.got[1].to.Phone)
}

func TestFeedbackDeliveredOnlyAndOnce(t *testing.T) {
	f := newFixture(t)
	o := f.order(t, f.asha, "", "", item(f.methi, 1, entities.UnitBunches, 10))

	el, err := f.s.FeedbackEligibility(o.ID)
	require.NoError(t, err)
	assert.False(t, el.CanSubmit)
	assert.Equal(t, reasonNotDelivered, el.Reason)

	_, err = f.s.SubmitFeedback(o.ID, service.FeedbackInput{Rating: ip(5)})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	_, err = f.s.SubmitFeedback(999, service.FeedbackInput{Rating: ip(5)})
	assert.True(t, apperr.Is(err, apperr.KindNotFound))
	_, err = f.s.FeedbackEligibility(999)
	assert.True(t, apperr.Is(err, apperr.KindNotFound))

	_, err = f.s.SetDeliveryStatus(context.Background(), o.ID, entities.DeliveryDelivered)
	require.NoError(t, err)

	_, err = f.s.SubmitFeedback(o.ID, service.FeedbackInput{Rating: ip(6)})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
	_, err = f.s.SubmitFeedback(o.ID, service.FeedbackInput{})
	var verr *apperr.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "rating", verr.Field)
	assert.Equal(t, "is required", verr.Msg)
	bad := 0
	_, err = f.s.SubmitFeedback(o.ID, service.FeedbackInput{Rating: ip(4), DeliveryQuality: &bad})
	assert.True(t, apperr.Is(err, apperr.KindValidation))

	el, err = f.s.FeedbackEligibility(o.ID)
	require.NoError(t, err)
	assert.True(t, el.CanSubmit)

	fresh := 5
	fb, err := f.s.SubmitFeedback(o.ID, service.FeedbackInput{Rating: ip(4), ProductFreshness: &fresh, Comments: " lovely "})
	require.NoError(t, err)
	assert.Equal(t, "Asha", fb.CustomerName)
	assert.Equal(t, "lovely", fb.Comments)

	_, err = f.s.SubmitFeedback(o.ID, service.FeedbackInput{Rating: ip(1)})
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	el, err = f.s.FeedbackEligibility(o.ID)
	require.NoError(t, err)
	assert.False(t, el.CanSubmit)
	assert.Equal(t, reasonAlreadyGiven, el.Reason)

	list, err := f.s.ListFeedback()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 4, list[0].Rating)
}

func TestCropDemandGrouping(t *testing.T) {
	f := newFixture(t)
	f.order(t, f.asha, entities.DeliveryPending, "2024-03-16", item(f.methi, 5, entities.UnitBunches, 20))
	f.order(t, f.ravi, entities.DeliveryPacked, "2024-03-17", item(f.methi, 3, entities.UnitBunches, 20), item(f.spinach, 1, entities.UnitKg, 80))
	f.order(t, f.asha, entities.DeliveryUnconfirmed, "2024-03-20", item(f.methi, 2, entities.UnitBunches, 20))
	f.order(t, f.ravi, entities.DeliveryDelivered, "2024-03-16", item(f.methi, 10, entities.UnitBunches, 20))
	f.order(t, f.ravi, entities.DeliveryPending, "2024-03-16", item(f.methi, 500, entities.UnitGrams, 50))

	lines, err := f.s.CropDemand(service.DemandQuery{})
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "Methi", lines[0].VarietyName)
	assert.Equal(t, entities.UnitBunches, lines[0].Unit)
	assert.InDelta(t, 10.0, lines[0].TotalQuantity, 1e-9)
	assert.EqualValues(t, 3, lines[0].OrderCount)
	assert.Equal(t, []string{"Asha", "Ravi"}, lines[0].Customers)

	assert.Equal(t, entities.UnitGrams, lines[1].Unit)
	assert.InDelta(t, 500.0, lines[1].TotalQuantity, 1e-9)
	assert.Equal(t, "Spinach", lines[2].VarietyName)

	lines, err = f.s.CropDemand(service.DemandQuery{From: "2024-03-17", To: "2024-03-17"})
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.InDelta(t, 3.0, lines[0].TotalQuantity, 1e-9)
	assert.Equal(t, []string{"Ravi"}, lines[0].Customers)

	lines, err = f.s.CropDemand(service.DemandQuery{Statuses: []string{entities.DeliveryDelivered}})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 10.0, lines[0].TotalQuantity, 1e-9)

	_, err = f.s.CropDemand(service.DemandQuery{Statuses: []string{"shipped"}})
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCropDemandSkipsOrdersWithoutCustomer(t *testing.T) {
	f := newFixture(t)
	f.order(t, f.asha, entities.DeliveryPending, "2024-03-16", item(f.methi, 5, entities.UnitBunches, 20))

	require.NoError(t, f.db.Exec("PRAGMA foreign_keys = OFF").Error)
	orphan := entities.SalesOrder{
		CustomerID:     999,
		OrderDate:      "2024-03-15",
		DeliveryDate:   "2024-03-16",
		DeliveryStatus: entities.DeliveryPending,
		PaymentStatus:  entities.PaymentPending,
	}
	require.NoError(t, f.db.Create(&orphan).Error)
	require.NoError(t, f.db.Create(&entities.OrderItem{
		OrderID: orphan.ID, VarietyID: f.methi, Quantity: 7, Unit: entities.UnitBunches,
	}).Error)

	lines, err := f.s.CropDemand(service.DemandQuery{})
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.InDelta(t, 5.0, lines[0].TotalQuantity, 1e-9)
	assert.EqualValues(t, 1, lines[0].OrderCount)
	assert.Equal(t, []string{"Asha"}, lines[0].Customers)
}

func TestDeleteOrderCascades(t *testing.T) {
	f := newFixture(t)
	o := f.order(t, f.asha, entities.DeliveryDelivered, "", item(f.methi, 1, entities.UnitBunches, 10))
	_, err := f.s.SubmitFeedback(o.ID, service.FeedbackInput{Rating: ip(5)})
	require.NoError(t, err)

	require.NoError(t, f.s.DeleteOrder(o.ID))
	for _, m := range []any{&entities.OrderItem{}, &entities.OrderFeedback{}} {
		var n int64
		require.NoError(t, f.db.Model(m).Count(&n).Error)
		assert.Zero(t, n)
	}
	assert.True(t, apperr.Is(f.s.DeleteOrder(o.ID), apperr.KindNotFound))
}
