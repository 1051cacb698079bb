package serviceImp

import (
	"github.com/shopspring/decimal"

	"farmhub/entities"
)

var hundred = decimal.NewFromInt(100)

// lineSubtotal is quantity x price, unrounded. Admin-entered lines use it
// whatever the unit; amounts are rounded only when shown.
func lineSubtotal(qty, price float64) float64 {
	return decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(price)).InexactFloat64()
}

// catalogPrice resolves the per-unit price the public form charges for a
// variety. Grams are priced per 100 g. ok is false when no price applies.
func catalogPrice(v entities.Variety, unit string) (price float64, ok bool) {
	var p *float64
	switch unit {
	case entities.UnitBunches:
		p = v.PricePerBunch
	case entities.UnitKg:
		p = v.PricePerKg
	case entities.UnitGrams:
		p = v.PricePer100g
	}
	if p == nil {
		return 0, false
	}
	return *p, true
}

// publicSubtotal prices a public order line from the catalog.
func publicSubtotal(v entities.Variety, qty float64, unit string) (price, subtotal float64) {
	price, ok := catalogPrice(v, unit)
	if !ok {
		return 0, 0
	}
	q := decimal.NewFromFloat(qty)
	if unit == entities.UnitGrams {
		q = q.Div(hundred)
	}
	return price, q.Mul(decimal.NewFromFloat(price)).InexactFloat64()
}

func orderTotal(items []entities.OrderItem) float64 {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Subtotal))
	}
	return sum.InexactFloat64()
}
