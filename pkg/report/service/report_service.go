package service

import (
	"io"
	"time"

	orderService "farmhub/pkg/order/service"
)

type UnitQuantity struct {
	Unit     string  `json:"unit"`
	Quantity float64 `json:"quantity"`
}

type VarietyStats struct {
	VarietyID       uint           `json:"variety_id"`
	Name            string         `json:"name"`
	TimesSowed      int            `json:"times_sowed"`
	Growing         int            `json:"growing"`
	Harvested       int            `json:"harvested"`
	Sold            int            `json:"sold"`
	TotalSowed      float64        `json:"total_sowed"`
	HarvestedByUnit []UnitQuantity `json:"harvested_by_unit"`
}

type CustomerVariety struct {
	Name     string  `json:"name"`
	Count    int     `json:"count"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"` // "mixed" when lines disagree
}

type CustomerStats struct {
	CustomerID       uint              `json:"customer_id"`
	Name             string            `json:"name"`
	Phone            string            `json:"phone"`
	OrderCount       int               `json:"order_count"`
	TotalSpent       float64           `json:"total_spent"`
	Varieties        []CustomerVariety `json:"varieties"`
	FavouriteVariety string            `json:"favourite_variety"`
	LatestOrderDate  string            `json:"latest_order_date"`
}

type Totals struct {
	Crops         int     `json:"crops"`
	Growing       int     `json:"growing"`
	Ready         int     `json:"ready"`
	Customers     int     `json:"customers"`
	Orders        int     `json:"orders"`
	OpenOrders    int     `json:"open_orders"`
	Revenue       float64 `json:"revenue"`
	Collected     float64 `json:"collected"`
	FeedbackCount int     `json:"feedback_count"`
	AverageRating float64 `json:"average_rating"`
}

type Dashboard struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Totals      Totals          `json:"totals"`
	Varieties   []VarietyStats  `json:"varieties"`
	Customers   []CustomerStats `json:"customers"`
}

type ReportService interface {
	VarietyReport() ([]VarietyStats, error)
	CustomerReport() ([]CustomerStats, error)
	Dashboard() (*Dashboard, error)
	DashboardXLSX(w io.Writer) error
	CropDemandXLSX(w io.Writer, q orderService.DemandQuery) error
}
