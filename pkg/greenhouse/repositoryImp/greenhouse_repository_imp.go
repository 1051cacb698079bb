package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmhub/entities"
	"farmhub/pkg/greenhouse/repository"
)

type greenhouseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GreenhouseRepository { return &greenhouseRepo{db} }

func (r *greenhouseRepo) Transaction(fn func(repository.GreenhouseRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&greenhouseRepo{tx}) })
}

func bedOrder(db *gorm.DB) *gorm.DB { return db.Order("side ASC, id ASC") }

func (r *greenhouseRepo) List() ([]entities.Greenhouse, error) {
	var out []entities.Greenhouse
	return out, r.db.Preload("Beds", bedOrder).Order("name ASC").Find(&out).Error
}

func (r *greenhouseRepo) FindByID(id uint) (*entities.Greenhouse, error) {
	var g entities.Greenhouse
	if err := r.db.Preload("Beds", bedOrder).First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *greenhouseRepo) FindByName(name string) (*entities.Greenhouse, error) {
	var g entities.Greenhouse
	if err := r.db.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *greenhouseRepo) Create(g *entities.Greenhouse) error {
	return r.db.Omit(clause.Associations).Create(g).Error
}

func (r *greenhouseRepo) CreateBeds(beds []entities.RaisedBed) error {
	if len(beds) == 0 {
		return nil
	}
	return r.db.Omit(clause.Associations).Create(&beds).Error
}

func (r *greenhouseRepo) ListBeds(f repository.BedFilter) ([]entities.RaisedBed, error) {
	q := r.db.Model(&entities.RaisedBed{}).Preload("Greenhouse")
	if f.GreenhouseID != nil {
		q = q.Where("greenhouse_id = ?", *f.GreenhouseID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var out []entities.RaisedBed
	return out, q.Order("greenhouse_id ASC, side ASC, id ASC").Find(&out).Error
}

func (r *greenhouseRepo) FindBed(id uint) (*entities.RaisedBed, error) {
	var b entities.RaisedBed
	if err := r.db.Preload("Greenhouse").First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *greenhouseRepo) SetBedStatus(id uint, status string) error {
	return r.db.Model(&entities.RaisedBed{}).Where("id = ?", id).Update("status", status).Error
}

func (r *greenhouseRepo) ActiveCrops(bedID uint) ([]entities.Crop, error) {
	var out []entities.Crop
	err := r.db.Preload("Variety").
		Where("raised_bed_id = ? AND status = ?", bedID, entities.CropGrowing).
		Order("sowing_date ASC, id ASC").
		Find(&out).Error
	return out, err
}
