package serviceImp

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	"farmhub/pkg/logging"
	repo "farmhub/pkg/variety/repository"
	"farmhub/pkg/variety/service"
)

type varietySvc struct{ r repo.VarietyRepository }

func NewVarietyService(r repo.VarietyRepository) service.VarietyService { return &varietySvc{r} }

func (s *varietySvc) ListVarieties() ([]entities.Variety, error) { return s.r.List() }

func (s *varietySvc) GetVariety(id uint) (*entities.Variety, error) {
	v, err := s.r.FindByID(id)
	return v, apperr.OrNotFound(err, "variety")
}

func validateInput(in *service.VarietyInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperr.Validation("name", "is required")
	}
	if in.DaysToHarvest < 0 {
		return apperr.Validation("days_to_harvest", "must not be negative")
	}
	for field, p := range map[string]*float64{
		"price_per_bunch": in.PricePerBunch,
		"price_per_kg":    in.PricePerKg,
		"price_per_100g":  in.PricePer100g,
	} {
		if p != nil && *p < 0 {
			return apperr.Validation(field, "must not be negative")
		}
	}
	return nil
}

func apply(v *entities.Variety, in service.VarietyInput) {
	v.Name = in.Name
	v.DaysToHarvest = in.DaysToHarvest
	v.PricePerBunch = in.PricePerBunch
	v.PricePerKg = in.PricePerKg
	v.PricePer100g = in.PricePer100g
	v.Notes = in.Notes
}

func (s *varietySvc) CreateVariety(in service.VarietyInput) (*entities.Variety, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	var v entities.Variety
	apply(&v, in)
	if err := s.r.Create(&v); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("variety %q already exists", in.Name)
		}
		return nil, err
	}
	return &v, nil
}

func (s *varietySvc) UpdateVariety(id uint, in service.VarietyInput) (*entities.Variety, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}
	v, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "variety")
	}
	apply(v, in)
	if err := s.r.Save(v); err != nil {
		if apperr.IsDuplicate(err) {
			return nil, apperr.Conflict("variety %q already exists", in.Name)
		}
		return nil, err
	}
	return v, nil
}

func (s *varietySvc) DeleteVariety(id uint) error {
	return s.r.Transaction(func(tx repo.VarietyRepository) error {
		if _, err := tx.FindByID(id); err != nil {
			return apperr.OrNotFound(err, "variety")
		}
		crops, items, err := tx.References(id)
		if err != nil {
			return err
		}
		if crops > 0 || items > 0 {
			return apperr.Conflict("variety is used by %d crop(s) and %d order item(s)", crops, items)
		}
		return tx.Delete(id)
	})
}

func (s *varietySvc) PriceList() ([]service.PriceEntry, error) {
	list, err := s.r.List()
	if err != nil {
		return nil, err
	}
	out := make([]service.PriceEntry, 0, len(list))
	for _, v := range list {
		out = append(out, service.PriceEntry{
			ID:            v.ID,
			Name:          v.Name,
			PricePerBunch: v.PricePerBunch,
			PricePerKg:    v.PricePerKg,
			PricePer100g:  v.PricePer100g,
		})
	}
	return out, nil
}

func (s *varietySvc) ImportVarieties(r io.Reader, format string) (*service.ImportResult, error) {
	rows, err := readCatalog(r, format)
	if err != nil {
		return nil, apperr.Validation("file", err.Error())
	}
	parsed, problems, err := parseCatalog(rows)
	if err != nil {
		return nil, apperr.Validation("file", err.Error())
	}

	res := &service.ImportResult{Skipped: len(problems), Errors: problems}
	err = s.r.Transaction(func(tx repo.VarietyRepository) error {
		for _, row := range parsed {
			cur, err := tx.FindByName(row.Name)
			switch {
			case err == nil:
				mergeRow(cur, row)
				if err := tx.Save(cur); err != nil {
					return err
				}
				res.Updated++
			case apperr.Is(err, apperr.KindNotFound):
				v := &entities.Variety{Name: row.Name}
				mergeRow(v, row)
				if err := tx.Create(v); err != nil {
					return err
				}
				res.Created++
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func mergeRow(v *entities.Variety, row catalogRow) {
	if row.DaysToHarvest != nil {
		v.DaysToHarvest = *row.DaysToHarvest
	}
	if row.PricePerBunch != nil {
		v.PricePerBunch = row.PricePerBunch
	}
	if row.PricePerKg != nil {
		v.PricePerKg = row.PricePerKg
	}
	if row.PricePer100g != nil {
		v.PricePer100g = row.PricePer100g
	}
	if row.Notes != nil {
		v.Notes = *row.Notes
	}
}

func (s *varietySvc) ImportFile(path string) (*service.ImportResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	res, err := s.ImportVarieties(f, filepath.Ext(path))
	if err != nil {
		return nil, err
	}
	entry := logging.Component("variety").WithField("file", path)
	for _, p := range res.Errors {
		entry.Warn(p)
	}
	entry.Infof("catalog import: %d created, %d updated, %d skipped", res.Created, res.Updated, res.Skipped)
	return res, nil
}
