package entities

import "time"

const (
	CropGrowing   = "growing"
	CropReady     = "ready" // derived, never stored
	CropHarvested = "harvested"
	CropSold      = "sold"
)

const (
	UnitBunches = "bunches"
	UnitKg      = "kg"
	UnitGrams   = "grams"
	UnitPieces  = "pieces"
)

func ValidUnit(u string) bool {
	switch u {
	case UnitBunches, UnitKg, UnitGrams, UnitPieces:
		return true
	}
	return false
}

type Crop struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	RaisedBedID         uint      `gorm:"not null;index" json:"raised_bed_id"`
	VarietyID           uint      `gorm:"not null;index" json:"variety_id"`
	SowingDate          string    `gorm:"not null" json:"sowing_date"`
	ExpectedHarvestDate *string   `json:"expected_harvest_date"`
	ActualHarvestDate   *string   `json:"actual_harvest_date"`
	QuantitySowed       string    `json:"quantity_sowed"`
	QuantityHarvested   *float64  `json:"quantity_harvested"` // legacy aggregate, see HarvestRecord
	HarvestUnit         string    `json:"harvest_unit"`
	Status              string    `gorm:"not null;default:growing;index" json:"status"`
	Notes               string    `json:"notes"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	RaisedBed      *RaisedBed      `gorm:"foreignKey:RaisedBedID" json:"raised_bed,omitempty"`
	Variety        *Variety        `gorm:"foreignKey:VarietyID" json:"variety,omitempty"`
	HarvestRecords []HarvestRecord `gorm:"foreignKey:CropID" json:"harvest_records,omitempty"`

	DisplayStatus string `gorm:"-" json:"display_status"`
}

func (Crop) TableName() string { return "crops" }

// DerivedStatus returns "ready" for a growing crop whose expected harvest
// date is on or before today, the stored status otherwise.
func (c *Crop) DerivedStatus(today string) string {
	if c.Status == CropGrowing && c.ExpectedHarvestDate != nil &&
		*c.ExpectedHarvestDate != "" && *c.ExpectedHarvestDate <= today {
		return CropReady
	}
	return c.Status
}

type HarvestRecord struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CropID      uint      `gorm:"not null;index" json:"crop_id"`
	HarvestDate string    `gorm:"not null" json:"harvest_date"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `gorm:"not null;default:bunches" json:"unit"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

func (HarvestRecord) TableName() string { return "harvest_records" }

const (
	ActivityWatering    = "watering"
	ActivityFertilizer  = "fertilizer"
	ActivityWeeding     = "weeding"
	ActivityPestControl = "pest_control"
	ActivityInspection  = "inspection"
	ActivityOther       = "other"
)

func ValidActivityType(t string) bool {
	switch t {
	case ActivityWatering, ActivityFertilizer, ActivityWeeding, ActivityPestControl, ActivityInspection, ActivityOther:
		return true
	}
	return false
}

type DailyActivity struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CropID       uint      `gorm:"not null;index" json:"crop_id"`
	ActivityDate string    `gorm:"not null;index" json:"activity_date"`
	ActivityType string    `gorm:"not null" json:"activity_type"`
	Description  string    `json:"description"`
	Quantity     *string   `json:"quantity"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
}

func (DailyActivity) TableName() string { return "daily_activities" }
