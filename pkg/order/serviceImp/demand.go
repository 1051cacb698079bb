package serviceImp

import (
	"sort"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/order/repository"
	"farmhub/pkg/order/service"
)

// DefaultDemandStatuses are the orders still waiting on the field.
var DefaultDemandStatuses = []string{entities.DeliveryPending, entities.DeliveryPacked, entities.DeliveryUnconfirmed}

type demandKey struct {
	variety uint
	unit    string
}

func (s *orderSvc) CropDemand(q service.DemandQuery) ([]service.DemandLine, error) {
	statuses := q.Statuses
	if len(statuses) == 0 {
		statuses = DefaultDemandStatuses
	}
	for _, st := range statuses {
		if !entities.ValidDeliveryStatus(st) {
			return nil, apperr.Validation("status", "unknown status "+st)
		}
	}
	if err := optionalDate("from", q.From); err != nil {
		return nil, err
	}
	if err := optionalDate("to", q.To); err != nil {
		return nil, err
	}
	f := repo.DemandFilter{Statuses: statuses, From: q.From, To: q.To}

	rows, err := s.r.Demand(f)
	if err != nil {
		return nil, err
	}
	names, err := s.r.DemandCustomers(f)
	if err != nil {
		return nil, err
	}
	byKey := map[demandKey][]string{}
	for _, n := range names {
		k := demandKey{n.VarietyID, n.Unit}
		byKey[k] = append(byKey[k], n.CustomerName)
	}

	out := make([]service.DemandLine, 0, len(rows))
	for _, r := range rows {
		cs := byKey[demandKey{r.VarietyID, r.Unit}]
		sort.Strings(cs)
		if cs == nil {
			cs = []string{}
		}
		out = append(out, service.DemandLine{
			VarietyID:     r.VarietyID,
			VarietyName:   r.VarietyName,
			Unit:          r.Unit,
			TotalQuantity: r.TotalQuantity,
			OrderCount:    r.OrderCount,
			Customers:     cs,
		})
	}
	return out, nil
}
