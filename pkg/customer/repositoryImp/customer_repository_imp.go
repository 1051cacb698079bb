package repositoryImp

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmhub/entities"
	"farmhub/pkg/customer/repository"
)

type customerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CustomerRepository { return &customerRepo{db} }

func (r *customerRepo) Transaction(fn func(repository.CustomerRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&customerRepo{tx}) })
}

func (r *customerRepo) List(search string) ([]entities.Customer, error) {
	q := r.db.Model(&entities.Customer{})
	if s := strings.TrimSpace(search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR phone LIKE ? OR whatsapp LIKE ?", like, like, like)
	}
	var out []entities.Customer
	return out, q.Order("name ASC, id ASC").Find(&out).Error
}

func (r *customerRepo) FindByID(id uint) (*entities.Customer, error) {
	var c entities.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) FindWithOrders(id uint) (*entities.Customer, error) {
	var c entities.Customer
	err := r.db.Preload("Orders", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_date DESC, id DESC")
	}).Preload("Orders.Items.Variety").First(&c, id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) FindByPhone(phone string) (*entities.Customer, error) {
	var c entities.Customer
	if err := r.db.Where("phone = ?", phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) Create(c *entities.Customer) error {
	return r.db.Omit(clause.Associations).Create(c).Error
}

func (r *customerRepo) Save(c *entities.Customer) error {
	return r.db.Omit(clause.Associations).Save(c).Error
}

func (r *customerRepo) Delete(id uint) error {
	res := r.db.Delete(&entities.Customer{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *customerRepo) CountOrders(id uint) (int64, error) {
	var n int64
	return n, r.db.Model(&entities.SalesOrder{}).Where("customer_id = ?", id).Count(&n).Error
}
