package service

import "farmhub/entities"

type CustomerInput struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Whatsapp string `json:"whatsapp"`
	Address  string `json:"address"`
	Email    string `json:"email"`
	Notes    string `json:"notes"`
}

// ContactInput is what the public order form knows about a customer.
type ContactInput struct {
	Name    string
	Phone   string
	Address string
}

type CustomerService interface {
	ListCustomers(search string) ([]entities.Customer, error)
	GetCustomer(id uint) (*entities.Customer, error)
	CreateCustomer(in CustomerInput) (*entities.Customer, error)
	UpdateCustomer(id uint, in CustomerInput) (*entities.Customer, error)
	DeleteCustomer(id uint) error
	// UpsertByPhone finds the customer by normalized phone, refreshing name
	// and address, or creates one. created reports which happened.
	UpsertByPhone(in ContactInput) (c *entities.Customer, created bool, err error)
}
