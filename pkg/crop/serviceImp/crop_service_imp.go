package serviceImp

import (
	"strings"
	"time"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/crop/repository"
	"farmhub/pkg/crop/service"
)

type cropSvc struct {
	r   repo.CropRepository
	now func() time.Time
}

func NewCropService(r repo.CropRepository, loc *time.Location) service.CropService {
	return &cropSvc{r: r, now: func() time.Time { return time.Now().In(loc) }}
}

func (s *cropSvc) today() string { return entities.FormatDate(s.now()) }

func (s *cropSvc) decorate(crops []entities.Crop) {
	today := s.today()
	for i := range crops {
		crops[i].DisplayStatus = crops[i].DerivedStatus(today)
	}
}

func (s *cropSvc) ListCrops(q service.CropQuery) ([]entities.Crop, error) {
	switch q.Status {
	case "", entities.CropGrowing, entities.CropReady, entities.CropHarvested, entities.CropSold:
	default:
		return nil, apperr.Validation("status", "must be growing, ready, harvested or sold")
	}
	list, err := s.r.List(repo.CropFilter{
		Status:      q.Status,
		RaisedBedID: q.RaisedBedID,
		VarietyID:   q.VarietyID,
		Today:       s.today(),
	})
	if err != nil {
		return nil, err
	}
	s.decorate(list)
	return list, nil
}

func (s *cropSvc) GetCrop(id uint) (*service.CropDetail, error) {
	c, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "crop")
	}
	c.DisplayStatus = c.DerivedStatus(s.today())
	totals, _ := totalsByUnit(c.HarvestRecords)
	return &service.CropDetail{Crop: *c, HarvestTotals: totals}, nil
}

func optionalDate(field string, v *string) error {
	if v != nil && *v != "" && !entities.ValidDate(*v) {
		return apperr.Validation(field, "must be a YYYY-MM-DD date")
	}
	return nil
}

func (s *cropSvc) CreateCrop(in service.CreateCropInput) (*entities.Crop, error) {
	if in.RaisedBedID == 0 {
		return nil, apperr.Validation("raised_bed_id", "is required")
	}
	if in.VarietyID == 0 {
		return nil, apperr.Validation("variety_id", "is required")
	}
	if !entities.ValidDate(in.SowingDate) {
		return nil, apperr.Validation("sowing_date", "must be a YYYY-MM-DD date")
	}
	if err := optionalDate("expected_harvest_date", in.ExpectedHarvestDate); err != nil {
		return nil, err
	}

	var created uint
	err := s.r.Transaction(func(tx repo.CropRepository) error {
		if _, err := tx.FindBed(in.RaisedBedID); err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return apperr.Validation("raised_bed_id", "bed does not exist")
			}
			return err
		}
		v, err := tx.FindVariety(in.VarietyID)
		if err != nil {
			if apperr.Is(err, apperr.KindNotFound) {
				return apperr.Validation("variety_id", "variety does not exist")
			}
			return err
		}

		expected := in.ExpectedHarvestDate
		if expected == nil {
			if d := v.ExpectedHarvest(in.SowingDate); d != "" {
				expected = &d
			}
		}
		c := &entities.Crop{
			RaisedBedID:         in.RaisedBedID,
			VarietyID:           in.VarietyID,
			SowingDate:          in.SowingDate,
			ExpectedHarvestDate: expected,
			QuantitySowed:       strings.TrimSpace(in.QuantitySowed),
			Status:              entities.CropGrowing,
			Notes:               in.Notes,
		}
		if err := tx.Create(c); err != nil {
			return err
		}
		created = c.ID
		return syncBedStatus(tx, c.RaisedBedID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(created)
}

func (s *cropSvc) reload(id uint) (*entities.Crop, error) {
	c, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "crop")
	}
	c.DisplayStatus = c.DerivedStatus(s.today())
	return c, nil
}

func validStoredStatus(status string) error {
	switch status {
	case entities.CropGrowing, entities.CropHarvested, entities.CropSold:
		return nil
	case entities.CropReady:
		return apperr.Validation("status", "ready is derived from the expected harvest date and cannot be set")
	}
	return apperr.Validation("status", "must be growing, harvested or sold")
}

func (s *cropSvc) UpdateCrop(id uint, p service.CropPatch) (*entities.Crop, error) {
	if p.Status != nil {
		if err := validStoredStatus(*p.Status); err != nil {
			return nil, err
		}
	}
	if p.SowingDate != nil && !entities.ValidDate(*p.SowingDate) {
		return nil, apperr.Validation("sowing_date", "must be a YYYY-MM-DD date")
	}
	if err := optionalDate("expected_harvest_date", p.ExpectedHarvestDate); err != nil {
		return nil, err
	}
	if err := optionalDate("actual_harvest_date", p.ActualHarvestDate); err != nil {
		return nil, err
	}
	if p.HarvestUnit != nil && *p.HarvestUnit != "" && !entities.ValidUnit(*p.HarvestUnit) {
		return nil, apperr.Validation("harvest_unit", "must be bunches, kg, grams or pieces")
	}

	err := s.r.Transaction(func(tx repo.CropRepository) error {
		c, err := tx.FindByID(id)
		if err != nil {
			return apperr.OrNotFound(err, "crop")
		}
		oldBed := c.RaisedBedID

		if p.RaisedBedID != nil && *p.RaisedBedID != c.RaisedBedID {
			if _, err := tx.FindBed(*p.RaisedBedID); err != nil {
				if apperr.Is(err, apperr.KindNotFound) {
					return apperr.Validation("raised_bed_id", "bed does not exist")
				}
				return err
			}
			c.RaisedBedID = *p.RaisedBedID
			c.RaisedBed = nil
		}
		if p.VarietyID != nil && *p.VarietyID != c.VarietyID {
			if _, err := tx.FindVariety(*p.VarietyID); err != nil {
				if apperr.Is(err, apperr.KindNotFound) {
					return apperr.Validation("variety_id", "variety does not exist")
				}
				return err
			}
			c.VarietyID = *p.VarietyID
			c.Variety = nil
		}
		if p.SowingDate != nil {
			c.SowingDate = *p.SowingDate
		}
		if p.ExpectedHarvestDate != nil {
			c.ExpectedHarvestDate = emptyToNil(*p.ExpectedHarvestDate)
		}
		if p.ActualHarvestDate != nil {
			c.ActualHarvestDate = emptyToNil(*p.ActualHarvestDate)
		}
		if p.QuantitySowed != nil {
			c.QuantitySowed = strings.TrimSpace(*p.QuantitySowed)
		}
		if p.QuantityHarvested != nil {
			c.QuantityHarvested = p.QuantityHarvested
		}
		if p.HarvestUnit != nil {
			c.HarvestUnit = *p.HarvestUnit
		}
		if p.Status != nil {
			c.Status = *p.Status
		}
		if p.Notes != nil {
			c.Notes = *p.Notes
		}

		if err := tx.Save(c); err != nil {
			return err
		}
		// release the old bed before occupying the new one
		if oldBed != c.RaisedBedID {
			if err := syncBedStatus(tx, oldBed); err != nil {
				return err
			}
		}
		return syncBedStatus(tx, c.RaisedBedID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(id)
}

func emptyToNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// statusMoves lists the transitions the status endpoint accepts. Anything
// else, including undoing a harvest, goes through UpdateCrop.
var statusMoves = map[string][]string{
	entities.CropGrowing:   {entities.CropHarvested, entities.CropSold},
	entities.CropHarvested: {entities.CropSold},
}

func canMove(from, to string) bool {
	for _, s := range statusMoves[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s *cropSvc) SetCropStatus(id uint, status string) (*entities.Crop, error) {
	if err := validStoredStatus(status); err != nil {
		return nil, err
	}
	err := s.r.Transaction(func(tx repo.CropRepository) error {
		c, err := tx.FindByID(id)
		if err != nil {
			return apperr.OrNotFound(err, "crop")
		}
		if !canMove(c.Status, status) {
			return apperr.Conflict("crop cannot move from %s to %s", c.Status, status)
		}
		c.Status = status
		if status == entities.CropHarvested && c.ActualHarvestDate == nil {
			today := s.today()
			c.ActualHarvestDate = &today
		}
		if err := tx.Save(c); err != nil {
			return err
		}
		return syncBedStatus(tx, c.RaisedBedID)
	})
	if err != nil {
		return nil, err
	}
	return s.reload(id)
}

// DeleteCrop removes the crop together with its harvest records and
// activities, then recomputes the bed.
func (s *cropSvc) DeleteCrop(id uint) error {
	return s.r.Transaction(func(tx repo.CropRepository) error {
		c, err := tx.FindByID(id)
		if err != nil {
			return apperr.OrNotFound(err, "crop")
		}
		if err := tx.Delete(id); err != nil {
			return err
		}
		return syncBedStatus(tx, c.RaisedBedID)
	})
}
