package repositoryImp

import (
	"gorm.io/gorm"

	"farmhub/entities"
	"farmhub/pkg/report/repository"
)

type reportRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReportRepository { return &reportRepo{db} }

func (r *reportRepo) Varieties() ([]entities.Variety, error) {
	var out []entities.Variety
	return out, r.db.Order("name ASC").Find(&out).Error
}

func (r *reportRepo) Crops() ([]entities.Crop, error) {
	var out []entities.Crop
	return out, r.db.Preload("HarvestRecords", func(db *gorm.DB) *gorm.DB {
		return db.Order("harvest_date ASC, id ASC")
	}).Order("id ASC").Find(&out).Error
}

func (r *reportRepo) Customers() ([]entities.Customer, error) {
	var out []entities.Customer
	return out, r.db.Order("name ASC, id ASC").Find(&out).Error
}

func (r *reportRepo) Orders() ([]entities.SalesOrder, error) {
	var out []entities.SalesOrder
	return out, r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Variety").
		Order("order_date ASC, id ASC").
		Find(&out).Error
}

func (r *reportRepo) Feedback() ([]entities.OrderFeedback, error) {
	var out []entities.OrderFeedback
	return out, r.db.Order("id ASC").Find(&out).Error
}
