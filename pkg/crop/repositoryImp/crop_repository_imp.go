package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmhub/entities"
	"farmhub/pkg/crop/repository"
)

type cropRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CropRepository { return &cropRepo{db} }

func (r *cropRepo) Transaction(fn func(repository.CropRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&cropRepo{tx}) })
}

func harvestOrder(db *gorm.DB) *gorm.DB { return db.Order("harvest_date ASC, id ASC") }

func (r *cropRepo) List(f repository.CropFilter) ([]entities.Crop, error) {
	q := r.db.Model(&entities.Crop{}).
		Preload("Variety").
		Preload("RaisedBed.Greenhouse").
		Preload("HarvestRecords", harvestOrder)

	due := "expected_harvest_date IS NOT NULL AND expected_harvest_date <> '' AND expected_harvest_date <= ?"
	switch f.Status {
	case "":
	case entities.CropReady:
		q = q.Where("status = ? AND "+due, entities.CropGrowing, f.Today)
	case entities.CropGrowing:
		q = q.Where("status = ? AND NOT ("+due+")", entities.CropGrowing, f.Today)
	default:
		q = q.Where("status = ?", f.Status)
	}
	if f.RaisedBedID != nil {
		q = q.Where("raised_bed_id = ?", *f.RaisedBedID)
	}
	if f.VarietyID != nil {
		q = q.Where("variety_id = ?", *f.VarietyID)
	}
	var out []entities.Crop
	return out, q.Order("sowing_date DESC, id DESC").Find(&out).Error
}

func (r *cropRepo) FindByID(id uint) (*entities.Crop, error) {
	var c entities.Crop
	err := r.db.Preload("Variety").
		Preload("RaisedBed.Greenhouse").
		Preload("HarvestRecords", harvestOrder).
		First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cropRepo) Create(c *entities.Crop) error {
	return r.db.Omit(clause.Associations).Create(c).Error
}

func (r *cropRepo) Save(c *entities.Crop) error {
	return r.db.Omit(clause.Associations).Save(c).Error
}

func (r *cropRepo) Delete(id uint) error {
	if err := r.db.Where("crop_id = ?", id).Delete(&entities.HarvestRecord{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("crop_id = ?", id).Delete(&entities.DailyActivity{}).Error; err != nil {
		return err
	}
	res := r.db.Delete(&entities.Crop{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *cropRepo) FindBed(id uint) (*entities.RaisedBed, error) {
	var b entities.RaisedBed
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *cropRepo) FindVariety(id uint) (*entities.Variety, error) {
	var v entities.Variety
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *cropRepo) CountGrowingOnBed(bedID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.Crop{}).
		Where("raised_bed_id = ? AND status = ?", bedID, entities.CropGrowing).
		Count(&n).Error
	return n, err
}

func (r *cropRepo) SetBedStatus(bedID uint, status string) error {
	return r.db.Model(&entities.RaisedBed{}).Where("id = ?", bedID).Update("status", status).Error
}

func (r *cropRepo) AddHarvestRecord(h *entities.HarvestRecord) error {
	return r.db.Create(h).Error
}

func (r *cropRepo) ListHarvestRecords(cropID uint) ([]entities.HarvestRecord, error) {
	var out []entities.HarvestRecord
	return out, harvestOrder(r.db.Where("crop_id = ?", cropID)).Find(&out).Error
}

func (r *cropRepo) FindHarvestRecord(id uint) (*entities.HarvestRecord, error) {
	var h entities.HarvestRecord
	if err := r.db.First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *cropRepo) DeleteHarvestRecord(id uint) error {
	return r.db.Delete(&entities.HarvestRecord{}, id).Error
}

func (r *cropRepo) AddActivity(a *entities.DailyActivity) error {
	return r.db.Create(a).Error
}

func (r *cropRepo) ListActivities(f repository.ActivityFilter) ([]entities.DailyActivity, error) {
	q := r.db.Model(&entities.DailyActivity{})
	if f.CropID != nil {
		q = q.Where("crop_id = ?", *f.CropID)
	}
	if f.From != "" {
		q = q.Where("activity_date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("activity_date <= ?", f.To)
	}
	if f.Type != "" {
		q = q.Where("activity_type = ?", f.Type)
	}
	var out []entities.DailyActivity
	return out, q.Order("activity_date DESC, id DESC").Find(&out).Error
}

func (r *cropRepo) FindActivity(id uint) (*entities.DailyActivity, error) {
	var a entities.DailyActivity
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *cropRepo) DeleteActivity(id uint) error {
	return r.db.Delete(&entities.DailyActivity{}, id).Error
}
