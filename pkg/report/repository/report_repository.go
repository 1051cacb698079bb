package repository

import "farmhub/entities"

// ReportRepository reads whole tables for in-memory aggregation. The farm's
// data set is small enough that this stays cheap.
type ReportRepository interface {
	Varieties() ([]entities.Variety, error)
	// Crops preloads harvest records.
	Crops() ([]entities.Crop, error)
	Customers() ([]entities.Customer, error)
	// Orders preloads items with their variety, oldest first.
	Orders() ([]entities.SalesOrder, error)
	Feedback() ([]entities.OrderFeedback, error)
}
