package entities

import "time"

const (
	SideLeft  = "Left"
	SideRight = "Right"
)

const (
	BedAvailable   = "available"
	BedOccupied    = "occupied"
	BedPreparation = "preparation"
)

type Greenhouse struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Name      string      `gorm:"uniqueIndex;not null" json:"name"`
	Beds      []RaisedBed `gorm:"foreignKey:GreenhouseID" json:"beds,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Greenhouse) TableName() string { return "greenhouses" }

// RaisedBed.Status is a cache of whether a growing crop sits on the bed;
// crop mutations recompute it.
type RaisedBed struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	GreenhouseID uint      `gorm:"not null;uniqueIndex:idx_bed_greenhouse_name" json:"greenhouse_id"`
	Side         string    `gorm:"not null" json:"side"` // Left|Right
	Name         string    `gorm:"not null;uniqueIndex:idx_bed_greenhouse_name" json:"name"`
	Status       string    `gorm:"not null;default:available;index" json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Greenhouse  *Greenhouse `gorm:"foreignKey:GreenhouseID" json:"greenhouse,omitempty"`
	ActiveCrops []Crop      `gorm:"-" json:"active_crops,omitempty"`
}

func (RaisedBed) TableName() string { return "raised_beds" }
