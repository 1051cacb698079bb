package serviceImp

import (
	"fmt"
	"strings"
	"time"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/greenhouse/repository"
	"farmhub/pkg/greenhouse/service"
)

const maxBedsPerSide = 100

type greenhouseSvc struct {
	r   repo.GreenhouseRepository
	now func() time.Time
}

func NewGreenhouseService(r repo.GreenhouseRepository, loc *time.Location) service.GreenhouseService {
	return &greenhouseSvc{r: r, now: func() time.Time { return time.Now().In(loc) }}
}

func (s *greenhouseSvc) ListGreenhouses() ([]entities.Greenhouse, error) {
	return s.r.List()
}

func (s *greenhouseSvc) GetGreenhouse(id uint) (*entities.Greenhouse, error) {
	g, err := s.r.FindByID(id)
	return g, apperr.OrNotFound(err, "greenhouse")
}

func (s *greenhouseSvc) CreateGreenhouse(in service.CreateGreenhouseInput) (*entities.Greenhouse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Validation("name", "is required")
	}
	if in.BedsPerSide < 1 || in.BedsPerSide > maxBedsPerSide {
		return nil, apperr.Validation("beds_per_side", fmt.Sprintf("must be between 1 and %d", maxBedsPerSide))
	}

	g := &entities.Greenhouse{Name: name}
	err := s.r.Transaction(func(tx repo.GreenhouseRepository) error {
		if err := tx.Create(g); err != nil {
			if apperr.IsDuplicate(err) {
				return apperr.Conflict("greenhouse %q already exists", name)
			}
			return err
		}
		g.Beds = layoutBeds(g.ID, in.BedsPerSide)
		return tx.CreateBeds(g.Beds)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *greenhouseSvc) EnsureGreenhouse(name string, bedsPerSide int) (*entities.Greenhouse, bool, error) {
	if g, err := s.r.FindByName(strings.TrimSpace(name)); err == nil {
		return g, false, nil
	} else if !apperr.Is(err, apperr.KindNotFound) {
		return nil, false, err
	}
	g, err := s.CreateGreenhouse(service.CreateGreenhouseInput{Name: name, BedsPerSide: bedsPerSide})
	if err != nil {
		return nil, false, err
	}
	return g, true, nil
}

// layoutBeds names beds L1..Ln then R1..Rn.
func layoutBeds(greenhouseID uint, perSide int) []entities.RaisedBed {
	beds := make([]entities.RaisedBed, 0, 2*perSide)
	for _, side := range []string{entities.SideLeft, entities.SideRight} {
		for i := 1; i <= perSide; i++ {
			beds = append(beds, entities.RaisedBed{
				GreenhouseID: greenhouseID,
				Side:         side,
				Name:         fmt.Sprintf("%s%d", side[:1], i),
				Status:       entities.BedAvailable,
			})
		}
	}
	return beds
}

func (s *greenhouseSvc) ListBeds(greenhouseID *uint, status string) ([]entities.RaisedBed, error) {
	if status != "" && !validBedStatus(status) {
		return nil, apperr.Validation("status", "must be available, occupied or preparation")
	}
	return s.r.ListBeds(repo.BedFilter{GreenhouseID: greenhouseID, Status: status})
}

func (s *greenhouseSvc) GetBed(id uint) (*entities.RaisedBed, error) {
	b, err := s.r.FindBed(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "bed")
	}
	crops, err := s.r.ActiveCrops(id)
	if err != nil {
		return nil, err
	}
	today := entities.FormatDate(s.now())
	for i := range crops {
		crops[i].DisplayStatus = crops[i].DerivedStatus(today)
	}
	b.ActiveCrops = crops
	return b, nil
}

// SetBedStatus is the manual maintenance switch. Occupied is never set by
// hand; it follows the crops on the bed.
func (s *greenhouseSvc) SetBedStatus(id uint, status string) (*entities.RaisedBed, error) {
	if status != entities.BedPreparation && status != entities.BedAvailable {
		return nil, apperr.Validation("status", "must be preparation or available")
	}
	err := s.r.Transaction(func(tx repo.GreenhouseRepository) error {
		if _, err := tx.FindBed(id); err != nil {
			return apperr.OrNotFound(err, "bed")
		}
		active, err := tx.ActiveCrops(id)
		if err != nil {
			return err
		}
		if len(active) > 0 {
			return apperr.Conflict("bed has %d active crop(s)", len(active))
		}
		return tx.SetBedStatus(id, status)
	})
	if err != nil {
		return nil, err
	}
	return s.GetBed(id)
}

func validBedStatus(s string) bool {
	return s == entities.BedAvailable || s == entities.BedOccupied || s == entities.BedPreparation
}
