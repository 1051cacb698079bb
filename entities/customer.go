package entities

import (
	"strings"
	"time"
)

type Customer struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Phone     string    `gorm:"uniqueIndex;not null" json:"phone"` // 10 digits
	Whatsapp  string    `json:"whatsapp"`
	Address   string    `json:"address"`
	Email     string    `json:"email"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Orders []SalesOrder `gorm:"foreignKey:CustomerID" json:"orders,omitempty"`
}

func (Customer) TableName() string { return "customers" }

// NormalizePhone strips everything but digits and drops a leading country
// code (91) or trunk prefix (0). ok is false unless exactly 10 digits remain.
func NormalizePhone(raw string) (phone string, ok bool) {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	d := b.String()
	switch {
	case len(d) == 12 && strings.HasPrefix(d, "91"):
		d = d[2:]
	case len(d) == 11 && strings.HasPrefix(d, "0"):
		d = d[1:]
	}
	return d, len(d) == 10
}
