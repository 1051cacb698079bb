package service

import "farmhub/entities"

type CreateGreenhouseInput struct {
	Name        string `json:"name"`
	BedsPerSide int    `json:"beds_per_side"`
}

type GreenhouseService interface {
	ListGreenhouses() ([]entities.Greenhouse, error)
	GetGreenhouse(id uint) (*entities.Greenhouse, error)
	CreateGreenhouse(in CreateGreenhouseInput) (*entities.Greenhouse, error)
	// EnsureGreenhouse creates the greenhouse unless one with the name exists.
	EnsureGreenhouse(name string, bedsPerSide int) (*entities.Greenhouse, bool, error)

	ListBeds(greenhouseID *uint, status string) ([]entities.RaisedBed, error)
	GetBed(id uint) (*entities.RaisedBed, error)
	SetBedStatus(id uint, status string) (*entities.RaisedBed, error)
}
