package serviceImp

import (
	"strings"

	"farmhub/entities"
	"farmhub/pkg/apperr"
	repo "farmhub/pkg/customer/repository"
	"farmhub/pkg/customer/service"
)

type customerSvc struct{ r repo.CustomerRepository }

func NewCustomerService(r repo.CustomerRepository) service.CustomerService { return &customerSvc{r} }

func (s *customerSvc) ListCustomers(search string) ([]entities.Customer, error) {
	return s.r.List(search)
}

func (s *customerSvc) GetCustomer(id uint) (*entities.Customer, error) {
	c, err := s.r.FindWithOrders(id)
	return c, apperr.OrNotFound(err, "customer")
}

func normalize(in *service.CustomerInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return apperr.Validation("name", "is required")
	}
	phone, ok := entities.NormalizePhone(in.Phone)
	if !ok {
		return apperr.Validation("phone", "must be a 10-digit number")
	}
	in.Phone = phone
	if strings.TrimSpace(in.Whatsapp) != "" {
		wa, ok := entities.NormalizePhone(in.Whatsapp)
		if !ok {
			return apperr.Validation("whatsapp", "must be a 10-digit number")
		}
		in.Whatsapp = wa
	} else {
		in.Whatsapp = ""
	}
	in.Email = strings.TrimSpace(in.Email)
	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return apperr.Validation("email", "is not an email address")
	}
	in.Address = strings.TrimSpace(in.Address)
	return nil
}

func apply(c *entities.Customer, in service.CustomerInput) {
	c.Name = in.Name
	c.Phone = in.Phone
	c.Whatsapp = in.Whatsapp
	c.Address = in.Address
	c.Email = in.Email
	c.Notes = in.Notes
}

func duplicatePhone(err error, phone string) error {
	if apperr.IsDuplicate(err) {
		return apperr.Conflict("a customer with phone %s already exists", phone)
	}
	return err
}

func (s *customerSvc) CreateCustomer(in service.CustomerInput) (*entities.Customer, error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}
	var c entities.Customer
	apply(&c, in)
	if err := s.r.Create(&c); err != nil {
		return nil, duplicatePhone(err, in.Phone)
	}
	return &c, nil
}

func (s *customerSvc) UpdateCustomer(id uint, in service.CustomerInput) (*entities.Customer, error) {
	if err := normalize(&in); err != nil {
		return nil, err
	}
	c, err := s.r.FindByID(id)
	if err != nil {
		return nil, apperr.OrNotFound(err, "customer")
	}
	apply(c, in)
	if err := s.r.Save(c); err != nil {
		return nil, duplicatePhone(err, in.Phone)
	}
	return c, nil
}

func (s *customerSvc) DeleteCustomer(id uint) error {
	return s.r.Transaction(func(tx repo.CustomerRepository) error {
		if _, err := tx.FindByID(id); err != nil {
			return apperr.OrNotFound(err, "customer")
		}
		n, err := tx.CountOrders(id)
		if err != nil {
			return err
		}
		if n > 0 {
			return apperr.Conflict("customer has %d order(s)", n)
		}
		return tx.Delete(id)
	})
}

func (s *customerSvc) UpsertByPhone(in service.ContactInput) (*entities.Customer, bool, error) {
	var (
		c       *entities.Customer
		created bool
	)
	err := s.r.Transaction(func(tx repo.CustomerRepository) error {
		var err error
		c, created, err = UpsertByPhone(tx, in)
		return err
	})
	return c, created, err
}

// UpsertByPhone runs the public-form customer rule against r, which may be
// bound to a caller's transaction.
func UpsertByPhone(r repo.CustomerRepository, in service.ContactInput) (*entities.Customer, bool, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, false, apperr.Validation("customer_name", "is required")
	}
	phone, ok := entities.NormalizePhone(in.Phone)
	if !ok {
		return nil, false, apperr.Validation("phone", "must be a 10-digit number")
	}
	address := strings.TrimSpace(in.Address)

	c, err := r.FindByPhone(phone)
	switch {
	case err == nil:
		c.Name = name
		if address != "" {
			c.Address = address
		}
		return c, false, r.Save(c)
	case apperr.Is(err, apperr.KindNotFound):
		c = &entities.Customer{Name: name, Phone: phone, Address: address}
		if err := r.Create(c); err != nil {
			return nil, false, duplicatePhone(err, phone)
		}
		return c, true, nil
	}
	return nil, false, err
}
