package serviceImp

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"farmhub/entities"
	orderService "farmhub/pkg/order/service"
	repo "farmhub/pkg/report/repository"
	"farmhub/pkg/report/service"
)

// DemandSource supplies crop-demand lines for the spreadsheet export.
type DemandSource interface {
	CropDemand(q orderService.DemandQuery) ([]orderService.DemandLine, error)
}

type reportSvc struct {
	r      repo.ReportRepository
	demand DemandSource
	now    func() time.Time
}

func NewReportService(r repo.ReportRepository, demand DemandSource, loc *time.Location) service.ReportService {
	return &reportSvc{r: r, demand: demand, now: func() time.Time { return time.Now().In(loc) }}
}

var leadingNumber = regexp.MustCompile(`^\s*[-+]?(\d+(\.\d*)?|\.\d+)`)

// leadingFloat parses the number at the start of free text such as "2 kg".
func leadingFloat(s string) (float64, bool) {
	m := leadingNumber.FindString(s)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m), 64)
	return v, err == nil
}

func sortedUnits(acc map[string]decimal.Decimal) []service.UnitQuantity {
	out := make([]service.UnitQuantity, 0, len(acc))
	for u, q := range acc {
		out = append(out, service.UnitQuantity{Unit: u, Quantity: q.InexactFloat64()})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Unit < out[j].Unit })
	return out
}

func (s *reportSvc) VarietyReport() ([]service.VarietyStats, error) {
	vs, err := s.r.Varieties()
	if err != nil {
		return nil, err
	}
	crops, err := s.r.Crops()
	if err != nil {
		return nil, err
	}
	return varietyStats(vs, crops), nil
}

func varietyStats(vs []entities.Variety, crops []entities.Crop) []service.VarietyStats {
	type acc struct {
		stats service.VarietyStats
		sowed decimal.Decimal
		units map[string]decimal.Decimal
	}
	byID := make(map[uint]*acc, len(vs))
	order := make([]*acc, 0, len(vs))
	for _, v := range vs {
		a := &acc{stats: service.VarietyStats{VarietyID: v.ID, Name: v.Name}, units: map[string]decimal.Decimal{}}
		byID[v.ID] = a
		order = append(order, a)
	}

	for _, c := range crops {
		a, ok := byID[c.VarietyID]
		if !ok {
			continue
		}
		a.stats.TimesSowed++
		switch c.Status {
		case entities.CropGrowing:
			a.stats.Growing++
		case entities.CropHarvested:
			a.stats.Harvested++
		case entities.CropSold:
			a.stats.Sold++
		}
		if q, ok := leadingFloat(c.QuantitySowed); ok {
			a.sowed = a.sowed.Add(decimal.NewFromFloat(q))
		}
		switch {
		case len(c.HarvestRecords) > 0:
			for _, h := range c.HarvestRecords {
				a.units[h.Unit] = a.units[h.Unit].Add(decimal.NewFromFloat(h.Quantity))
			}
		case c.QuantityHarvested != nil:
			unit := c.HarvestUnit
			if unit == "" {
				unit = entities.UnitBunches
			}
			a.units[unit] = a.units[unit].Add(decimal.NewFromFloat(*c.QuantityHarvested))
		}
	}

	out := make([]service.VarietyStats, 0, len(order))
	for _, a := range order {
		a.stats.TotalSowed = a.sowed.InexactFloat64()
		a.stats.HarvestedByUnit = sortedUnits(a.units)
		out = append(out, a.stats)
	}
	return out
}

func (s *reportSvc) CustomerReport() ([]service.CustomerStats, error) {
	cs, err := s.r.Customers()
	if err != nil {
		return nil, err
	}
	orders, err := s.r.Orders()
	if err != nil {
		return nil, err
	}
	return customerStats(cs, orders), nil
}

// customerStats expects orders oldest first; the favourite variety is the
// first one to reach the highest line count in that order.
func customerStats(cs []entities.Customer, orders []entities.SalesOrder) []service.CustomerStats {
	type acc struct {
		stats     service.CustomerStats
		spent     decimal.Decimal
		varieties []*service.CustomerVariety
		byName    map[string]*service.CustomerVariety
		qty       map[string]decimal.Decimal
		best      int
	}
	byID := make(map[uint]*acc, len(cs))
	list := make([]*acc, 0, len(cs))
	for _, c := range cs {
		a := &acc{
			stats:  service.CustomerStats{CustomerID: c.ID, Name: c.Name, Phone: c.Phone},
			byName: map[string]*service.CustomerVariety{},
			qty:    map[string]decimal.Decimal{},
		}
		byID[c.ID] = a
		list = append(list, a)
	}

	for _, o := range orders {
		a, ok := byID[o.CustomerID]
		if !ok {
			continue
		}
		a.stats.OrderCount++
		a.spent = a.spent.Add(decimal.NewFromFloat(o.TotalAmount))
		if o.OrderDate > a.stats.LatestOrderDate {
			a.stats.LatestOrderDate = o.OrderDate
		}
		for _, it := range o.Items {
			name := "unknown"
			if it.Variety != nil {
				name = it.Variety.Name
			}
			cv, seen := a.byName[name]
			if !seen {
				cv = &service.CustomerVariety{Name: name, Unit: it.Unit}
				a.byName[name] = cv
				a.varieties = append(a.varieties, cv)
			} else if cv.Unit != it.Unit {
				cv.Unit = "mixed"
			}
			cv.Count++
			a.qty[name] = a.qty[name].Add(decimal.NewFromFloat(it.Quantity))
			if cv.Count > a.best {
				a.best = cv.Count
				a.stats.FavouriteVariety = name
			}
		}
	}

	out := make([]service.CustomerStats, 0, len(list))
	for _, a := range list {
		a.stats.TotalSpent = a.spent.Round(2).InexactFloat64()
		a.stats.Varieties = make([]service.CustomerVariety, 0, len(a.varieties))
		for _, cv := range a.varieties {
			cv.Quantity = a.qty[cv.Name].InexactFloat64()
			a.stats.Varieties = append(a.stats.Varieties, *cv)
		}
		out = append(out, a.stats)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	return out
}

func (s *reportSvc) Dashboard() (*service.Dashboard, error) {
	vs, err := s.r.Varieties()
	if err != nil {
		return nil, err
	}
	crops, err := s.r.Crops()
	if err != nil {
		return nil, err
	}
	cs, err := s.r.Customers()
	if err != nil {
		return nil, err
	}
	orders, err := s.r.Orders()
	if err != nil {
		return nil, err
	}
	fbs, err := s.r.Feedback()
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := entities.FormatDate(now)
	t := service.Totals{Crops: len(crops), Customers: len(cs), Orders: len(orders), FeedbackCount: len(fbs)}
	for i := range crops {
		switch crops[i].DerivedStatus(today) {
		case entities.CropGrowing:
			t.Growing++
		case entities.CropReady:
			t.Ready++
		}
	}
	revenue, collected := decimal.Zero, decimal.Zero
	for _, o := range orders {
		if o.DeliveryStatus == entities.DeliveryCancelled {
			continue
		}
		if o.DeliveryStatus != entities.DeliveryDelivered {
			t.OpenOrders++
		}
		amt := decimal.NewFromFloat(o.TotalAmount)
		revenue = revenue.Add(amt)
		if o.PaymentStatus == entities.PaymentPaid {
			collected = collected.Add(amt)
		}
	}
	t.Revenue = revenue.Round(2).InexactFloat64()
	t.Collected = collected.Round(2).InexactFloat64()
	if len(fbs) > 0 {
		sum := 0
		for _, f := range fbs {
			sum += f.Rating
		}
		t.AverageRating = decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(len(fbs)))).Round(2).InexactFloat64()
	}

	return &service.Dashboard{
		GeneratedAt: now,
		Totals:      t,
		Varieties:   varietyStats(vs, crops),
		Customers:   customerStats(cs, orders),
	}, nil
}
