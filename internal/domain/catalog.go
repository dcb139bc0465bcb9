package domain

import "github.com/shopspring/decimal"

// Service salon service from the catalog
type Service struct {
	ID              int64
	Name            string
	Slug            string
	Price           decimal.Decimal
	DurationMinutes *int
	IsActive        bool
	Category        string
}

// Duration service duration in minutes, DefaultServiceDurationMinutes when unset
func (s *Service) Duration() int {
	if s.DurationMinutes == nil || *s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return *s.DurationMinutes
}

// Branch salon location
type Branch struct {
	ID      int64
	Name    string
	Address string
	Phone   string
}
