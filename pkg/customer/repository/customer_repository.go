package repository

import "farmhub/entities"

type CustomerRepository interface {
	Transaction(fn func(CustomerRepository) error) error

	List(search string) ([]entities.Customer, error)
	FindByID(id uint) (*entities.Customer, error)
	// FindWithOrders loads the customer and its orders, newest first.
	FindWithOrders(id uint) (*entities.Customer, error)
	FindByPhone(phone string) (*entities.Customer, error)
	Create(c *entities.Customer) error
	Save(c *entities.Customer) error
	Delete(id uint) error
	CountOrders(id uint) (int64, error)
}
