package repository

import "farmhub/entities"

type BedFilter struct {
	GreenhouseID *uint
	Status       string
}

type GreenhouseRepository interface {
	Transaction(fn func(GreenhouseRepository) error) error

	List() ([]entities.Greenhouse, error)
	FindByID(id uint) (*entities.Greenhouse, error)
	FindByName(name string) (*entities.Greenhouse, error)
	Create(g *entities.Greenhouse) error

	CreateBeds(beds []entities.RaisedBed) error
	ListBeds(f BedFilter) ([]entities.RaisedBed, error)
	FindBed(id uint) (*entities.RaisedBed, error)
	SetBedStatus(id uint, status string) error
	ActiveCrops(bedID uint) ([]entities.Crop, error)
}
