package repositoryImp

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"farmhub/entities"
	customerRepo "farmhub/pkg/customer/repository"
	customerRepoImp "farmhub/pkg/customer/repositoryImp"
	"farmhub/pkg/order/repository"
)

type orderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrderRepository { return &orderRepo{db} }

func (r *orderRepo) Transaction(fn func(repository.OrderRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error { return fn(&orderRepo{tx}) })
}

func (r *orderRepo) Customers() customerRepo.CustomerRepository { return customerRepoImp.New(r.db) }

func withDetails(db *gorm.DB) *gorm.DB {
	return db.Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Preload("Items.Variety").
		Preload("Feedback")
}

func (r *orderRepo) List(f repository.OrderFilter) ([]entities.SalesOrder, error) {
	q := withDetails(r.db.Model(&entities.SalesOrder{}))
	if f.CustomerID != nil {
		q = q.Where("customer_id = ?", *f.CustomerID)
	}
	if len(f.DeliveryStatuses) > 0 {
		q = q.Where("delivery_status IN ?", f.DeliveryStatuses)
	}
	if f.PaymentStatus != "" {
		q = q.Where("payment_status = ?", f.PaymentStatus)
	}
	if f.From != "" {
		q = q.Where("order_date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("order_date <= ?", f.To)
	}
	var out []entities.SalesOrder
	return out, q.Order("order_date DESC, id DESC").Find(&out).Error
}

func (r *orderRepo) FindByID(id uint) (*entities.SalesOrder, error) {
	var o entities.SalesOrder
	if err := withDetails(r.db).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) Create(o *entities.SalesOrder) error {
	return r.db.Omit(clause.Associations).Create(o).Error
}

func (r *orderRepo) Save(o *entities.SalesOrder) error {
	return r.db.Omit(clause.Associations).Save(o).Error
}

// Delete removes the order with its items and feedback. The schema cascades
// too; deleting explicitly keeps engines without foreign keys consistent.
func (r *orderRepo) Delete(id uint) error {
	if err := r.db.Where("order_id = ?", id).Delete(&entities.OrderItem{}).Error; err != nil {
		return err
	}
	if err := r.db.Where("order_id = ?", id).Delete(&entities.OrderFeedback{}).Error; err != nil {
		return err
	}
	res := r.db.Delete(&entities.SalesOrder{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *orderRepo) ReplaceItems(orderID uint, items []entities.OrderItem) error {
	if err := r.db.Where("order_id = ?", orderID).Delete(&entities.OrderItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].ID = 0
		items[i].OrderID = orderID
	}
	return r.db.Omit(clause.Associations).Create(&items).Error
}

func (r *orderRepo) FindVarieties(ids []uint) (map[uint]entities.Variety, error) {
	out := make(map[uint]entities.Variety, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var list []entities.Variety
	if err := r.db.Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, err
	}
	for _, v := range list {
		out[v.ID] = v
	}
	return out, nil
}

// demandBase joins items to open orders that still have a customer; the
// inner join on customers drops orphaned orders.
func (r *orderRepo) demandBase(f repository.DemandFilter) *gorm.DB {
	q := r.db.Table("order_items AS oi").
		Joins("JOIN sales_orders so ON so.id = oi.order_id").
		Joins("JOIN customers c ON c.id = so.customer_id").
		Joins("JOIN varieties v ON v.id = oi.variety_id").
		Where("so.delivery_status IN ?", f.Statuses)
	if f.From != "" {
		q = q.Where("so.delivery_date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("so.delivery_date <= ?", f.To)
	}
	return q
}

func (r *orderRepo) Demand(f repository.DemandFilter) ([]repository.DemandRow, error) {
	var rows []repository.DemandRow
	err := r.demandBase(f).
		Select("oi.variety_id AS variety_id, v.name AS variety_name, oi.unit AS unit, " +
			"SUM(oi.quantity) AS total_quantity, COUNT(DISTINCT oi.order_id) AS order_count").
		Group("oi.variety_id, v.name, oi.unit").
		Order("v.name ASC, oi.unit ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) DemandCustomers(f repository.DemandFilter) ([]repository.DemandCustomer, error) {
	var rows []repository.DemandCustomer
	err := r.demandBase(f).
		Select("DISTINCT oi.variety_id AS variety_id, oi.unit AS unit, c.name AS customer_name").
		Scan(&rows).Error
	return rows, err
}

func (r *orderRepo) FindFeedback(orderID uint) (*entities.OrderFeedback, error) {
	var fb entities.OrderFeedback
	if err := r.db.Where("order_id = ?", orderID).First(&fb).Error; err != nil {
		return nil, err
	}
	return &fb, nil
}

func (r *orderRepo) CreateFeedback(fb *entities.OrderFeedback) error {
	return r.db.Create(fb).Error
}

func (r *orderRepo) ListFeedback() ([]entities.OrderFeedback, error) {
	var out []entities.OrderFeedback
	return out, r.db.Order("created_at DESC, id DESC").Find(&out).Error
}
