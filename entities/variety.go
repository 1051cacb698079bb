package entities

import "time"

type Variety struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"uniqueIndex;not null" json:"name"`
	DaysToHarvest int       `json:"days_to_harvest"`
	PricePerBunch *float64  `json:"price_per_bunch"`
	PricePerKg    *float64  `json:"price_per_kg"`
	PricePer100g  *float64  `gorm:"column:price_per_100g" json:"price_per_100g"`
	Notes         string    `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Variety) TableName() string { return "varieties" }

// ExpectedHarvest returns sowingDate + DaysToHarvest, or "" when the date does
// not parse.
func (v *Variety) ExpectedHarvest(sowingDate string) string {
	d, err := ParseDate(sowingDate)
	if err != nil {
		return ""
	}
	return FormatDate(d.AddDate(0, 0, v.DaysToHarvest))
}
