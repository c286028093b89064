package domain

import "time"

// Service represents a bookable salon service
type Service struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
