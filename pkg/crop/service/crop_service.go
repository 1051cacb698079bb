package service

import "farmhub/entities"

type CreateCropInput struct {
	RaisedBedID         uint    `json:"raised_bed_id"`
	VarietyID           uint    `json:"variety_id"`
	SowingDate          string  `json:"sowing_date"`
	ExpectedHarvestDate *string `json:"expected_harvest_date"`
	QuantitySowed       string  `json:"quantity_sowed"`
	Notes               string  `json:"notes"`
}

// CropPatch carries only the fields to change. Status here is the explicit
// edit path and may move a crop back to growing.
type CropPatch struct {
	RaisedBedID         *uint    `json:"raised_bed_id"`
	VarietyID           *uint    `json:"variety_id"`
	SowingDate          *string  `json:"sowing_date"`
	ExpectedHarvestDate *string  `json:"expected_harvest_date"`
	ActualHarvestDate   *string  `json:"actual_harvest_date"`
	QuantitySowed       *string  `json:"quantity_sowed"`
	QuantityHarvested   *float64 `json:"quantity_harvested"`
	HarvestUnit         *string  `json:"harvest_unit"`
	Status              *string  `json:"status"`
	Notes               *string  `json:"notes"`
}

type CropQuery struct {
	Status      string
	RaisedBedID *uint
	VarietyID   *uint
}

type HarvestInput struct {
	HarvestDate string  `json:"harvest_date"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	Notes       string  `json:"notes"`
}

type ActivityInput struct {
	CropID       uint    `json:"crop_id"`
	ActivityDate string  `json:"activity_date"`
	ActivityType string  `json:"activity_type"`
	Description  string  `json:"description"`
	Quantity     *string `json:"quantity"`
	Notes        string  `json:"notes"`
}

type ActivityQuery struct {
	CropID *uint
	From   string
	To     string
	Type   string
}

type UnitTotal struct {
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

type CropDetail struct {
	entities.Crop
	HarvestTotals []UnitTotal `json:"harvest_totals"`
}

// HarvestSummary is the outcome of completing a harvest. MixedUnits is set
// when records disagree on unit; the crop's quantity_harvested is then left
// empty and Totals is the only aggregate.
type HarvestSummary struct {
	Crop       *entities.Crop `json:"crop"`
	Totals     []UnitTotal    `json:"totals"`
	MixedUnits bool           `json:"mixed_units"`
}

type CropService interface {
	ListCrops(q CropQuery) ([]entities.Crop, error)
	GetCrop(id uint) (*CropDetail, error)
	CreateCrop(in CreateCropInput) (*entities.Crop, error)
	UpdateCrop(id uint, p CropPatch) (*entities.Crop, error)
	SetCropStatus(id uint, status string) (*entities.Crop, error)
	DeleteCrop(id uint) error

	AddHarvestRecord(cropID uint, in HarvestInput) (*entities.HarvestRecord, error)
	ListHarvestRecords(cropID uint) ([]entities.HarvestRecord, error)
	DeleteHarvestRecord(cropID, recordID uint) error
	CompleteHarvest(cropID uint) (*HarvestSummary, error)

	LogActivity(in ActivityInput) (*entities.DailyActivity, error)
	ListActivities(q ActivityQuery) ([]entities.DailyActivity, error)
	DeleteActivity(id uint) error
}
