package repository

import "farmhub/entities"

// CropFilter selects crops by their displayed status; "ready" and "growing"
// are told apart by comparing expected_harvest_date with Today.
type CropFilter struct {
	Status      string
	RaisedBedID *uint
	VarietyID   *uint
	Today       string
}

type ActivityFilter struct {
	CropID *uint
	From   string
	To     string
	Type   string
}

type CropRepository interface {
	Transaction(fn func(CropRepository) error) error

	List(f CropFilter) ([]entities.Crop, error)
	FindByID(id uint) (*entities.Crop, error)
	Create(c *entities.Crop) error
	Save(c *entities.Crop) error
	// Delete removes the crop with its harvest records and activities.
	Delete(id uint) error

	FindBed(id uint) (*entities.RaisedBed, error)
	FindVariety(id uint) (*entities.Variety, error)
	CountGrowingOnBed(bedID uint) (int64, error)
	SetBedStatus(bedID uint, status string) error

	AddHarvestRecord(h *entities.HarvestRecord) error
	ListHarvestRecords(cropID uint) ([]entities.HarvestRecord, error)
	FindHarvestRecord(id uint) (*entities.HarvestRecord, error)
	DeleteHarvestRecord(id uint) error

	AddActivity(a *entities.DailyActivity) error
	ListActivities(f ActivityFilter) ([]entities.DailyActivity, error)
	FindActivity(id uint) (*entities.DailyActivity, error)
	DeleteActivity(id uint) error
}
