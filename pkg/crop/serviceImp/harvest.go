package serviceImp

import (
	"sort"

	"github.com/shopspring/decimal"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/crop/repository"
	"farmhub/pkg/crop/service"
)

func (s *cropSvc) AddHarvestRecord(cropID uint, in service.HarvestInput) (*entities.HarvestRecord, error) {
	if !entities.ValidDate(in.HarvestDate) {
		return nil, apperr.Validation("harvest_date", "must be a YYYY-MM-DD date")
	}
	if in.Quantity <= 0 {
		return nil, apperr.Validation("quantity", "must be greater than zero")
	}
	if in.Unit == "" {
		in.Unit = entities.UnitBunches
	}
	if !entities.ValidUnit(in.Unit) {
		return nil, apperr.Validation("unit", "must be bunches, kg, grams or pieces")
	}
	if _, err := s.r.FindByID(cropID); err != nil {
		return nil, apperr.OrNotFound(err, "crop")
	}
	h := &entities.HarvestRecord{
		CropID:      cropID,
		HarvestDate: in.HarvestDate,
		Quantity:    in.Quantity,
		Unit:        in.Unit,
		Notes:       in.Notes,
	}
	if err := s.r.AddHarvestRecord(h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *cropSvc) ListHarvestRecords(cropID uint) ([]entities.HarvestRecord, error) {
	if _, err := s.r.FindByID(cropID); err != nil {
		return nil, apperr.OrNotFound(err, "crop")
	}
	return s.r.ListHarvestRecords(cropID)
}

func (s *cropSvc) DeleteHarvestRecord(cropID, recordID uint) error {
	h, err := s.r.FindHarvestRecord(recordID)
	if err != nil || h.CropID != cropID {
		if err == nil || apperr.Is(err, apperr.KindNotFound) {
			return apperr.NotFound("harvest record")
		}
		return err
	}
	return s.r.DeleteHarvestRecord(recordID)
}

// CompleteHarvest closes a crop's harvest from its records. With no records
// the crop is left untouched.
func (s *cropSvc) CompleteHarvest(cropID uint) (*service.HarvestSummary, error) {
	var sum service.HarvestSummary
	err := s.r.Transaction(func(tx repo.CropRepository) error {
		c, err := tx.FindByID(cropID)
		if err != nil {
			return apperr.OrNotFound(err, "crop")
		}
		if c.Status == entities.CropSold {
			return apperr.Conflict("crop is already sold")
		}
		records, err := tx.ListHarvestRecords(cropID)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return apperr.Validation("harvest_records", "at least one harvest record is required")
		}

		latest := records[0].HarvestDate
		for _, h := range records[1:] {
			if h.HarvestDate > latest {
				latest = h.HarvestDate
			}
		}
		totals, single := totalsByUnit(records)

		c.Status = entities.CropHarvested
		c.ActualHarvestDate = &latest
		if single {
			q := totals[0].Quantity
			c.QuantityHarvested = &q
			c.HarvestUnit = totals[0].Unit
		} else {
			c.QuantityHarvested = nil
			c.HarvestUnit = ""
		}
		if err := tx.Save(c); err != nil {
			return err
		}
		sum.Totals = totals
		sum.MixedUnits = !single
		return syncBedStatus(tx, c.RaisedBedID)
	})
	if err != nil {
		return nil, err
	}
	crop, err := s.reload(cropID)
	if err != nil {
		return nil, err
	}
	sum.Crop = crop
	return &sum, nil
}

// totalsByUnit sums record quantities per unit, sorted by unit. single is
// true when every record shares one unit.
func totalsByUnit(records []entities.HarvestRecord) (totals []service.UnitTotal, single bool) {
	acc := map[string]decimal.Decimal{}
	for _, h := range records {
		acc[h.Unit] = acc[h.Unit].Add(decimal.NewFromFloat(h.Quantity))
	}
	totals = make([]service.UnitTotal, 0, len(acc))
	for unit, q := range acc {
		totals = append(totals, service.UnitTotal{Unit: unit, Quantity: q.InexactFloat64()})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Unit < totals[j].Unit })
	return totals, len(totals) == 1
}
