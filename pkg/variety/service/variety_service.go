package service

import (
	"io"

	"farmhub/entities"
)

// VarietyInput is the full editable state of a variety. Nil prices clear the
// price.
type VarietyInput struct {
	Name          string   `json:"name"`
	DaysToHarvest int      `json:"days_to_harvest"`
	PricePerBunch *float64 `json:"price_per_bunch"`
	PricePerKg    *float64 `json:"price_per_kg"`
	PricePer100g  *float64 `json:"price_per_100g"`
	Notes         string   `json:"notes"`
}

// PriceEntry is the public view of a variety.
type PriceEntry struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	PricePerBunch *float64 `json:"price_per_bunch"`
	PricePerKg    *float64 `json:"price_per_kg"`
	PricePer100g  *float64 `json:"price_per_100g"`
}

type ImportResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

type VarietyService interface {
	ListVarieties() ([]entities.Variety, error)
	GetVariety(id uint) (*entities.Variety, error)
	CreateVariety(in VarietyInput) (*entities.Variety, error)
	UpdateVariety(id uint, in VarietyInput) (*entities.Variety, error)
	DeleteVariety(id uint) error
	PriceList() ([]PriceEntry, error)

	// ImportVarieties upserts catalog rows by name. format is "csv" or "xlsx".
	ImportVarieties(r io.Reader, format string) (*ImportResult, error)
	ImportFile(path string) (*ImportResult, error)
}
