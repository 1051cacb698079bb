package repository

import "farmhub/entities"

type VarietyRepository interface {
	Transaction(fn func(VarietyRepository) error) error

	List() ([]entities.Variety, error)
	FindByID(id uint) (*entities.Variety, error)
	FindByName(name string) (*entities.Variety, error)
	Create(v *entities.Variety) error
	Save(v *entities.Variety) error
	Delete(id uint) error
	// References counts crops and order items pointing at the variety.
	References(id uint) (crops, orderItems int64, err error)
}
