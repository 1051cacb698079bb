package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmhub/entities"
	"farmhub/pkg/variety/repository"
)

type varietyRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.VarietyRepository { return &varietyRepo{db} }

func (r *varietyRepo) Transaction(fn func(repository.VarietyRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&varietyRepo{tx}) })
}

func (r *varietyRepo) List() ([]entities.Variety, error) {
	var out []entities.Variety
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *varietyRepo) FindByID(id uint) (*entities.Variety, error) {
	var v entities.Variety
	if err := r.db.First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *varietyRepo) FindByName(name string) (*entities.Variety, error) {
	var v entities.Variety
	if err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *varietyRepo) Create(v *entities.Variety) error {
	return r.db.Omit(clause.Associations).Create(v).Error
}

func (r *varietyRepo) Save(v *entities.Variety) error {
	return r.db.Omit(clause.Associations).Save(v).Error
}

func (r *varietyRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Variety{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *varietyRepo) References(id uint) (crops, orderItems int64, err error) {
	if err = r.db.Model(&entities.Crop{}).Where("variety_id = ?", id).Count(&crops).Error; err != nil {
		return
	}
	err = r.db.Model(&entities.OrderItem{}).Where("variety_id = ?", id).Count(&orderItems).Error
	return
}
