package repository

import (
	"farmhub/entities"
	customerRepo "farmhub/pkg/customer/repository"
)

type OrderFilter struct {
	CustomerID       *uint
	DeliveryStatuses []string
	PaymentStatus    string
	From             string // order_date lower bound, inclusive
	To               string
}

type DemandFilter struct {
	Statuses []string
	From     string // delivery_date bounds, inclusive
	To       string
}

type DemandRow struct {
	VarietyID     uint
	VarietyName   string
	Unit          string
	TotalQuantity float64
	OrderCount    int64
}

type DemandCustomer struct {
	VarietyID    uint
	Unit         string
	CustomerName string
}

type OrderRepository interface {
	Transaction(fn func(OrderRepository) error) error
	// Customers returns a customer repository sharing this repository's
	// connection or transaction.
	Customers() customerRepo.CustomerRepository

	List(f OrderFilter) ([]entities.SalesOrder, error)
	FindByID(id uint) (*entities.SalesOrder, error)
	Create(o *entities.SalesOrder) error
	Save(o *entities.SalesOrder) error
	Delete(id uint) error
	ReplaceItems(orderID uint, items []entities.OrderItem) error
	FindVarieties(ids []uint) (map[uint]entities.Variety, error)

	Demand(f DemandFilter) ([]DemandRow, error)
	DemandCustomers(f DemandFilter) ([]DemandCustomer, error)

	FindFeedback(orderID uint) (*entities.OrderFeedback, error)
	CreateFeedback(fb *entities.OrderFeedback) error
	ListFeedback() ([]entities.OrderFeedback, error)
}
