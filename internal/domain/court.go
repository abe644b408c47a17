package domain

import "time"

// CourtCategory sport category of a court
type CourtCategory string

const (
	CategoryCricket CourtCategory = "cricket"
	CategoryFutsal  CourtCategory = "futsal"
	CategoryPadel   CourtCategory = "padel"
)

// Court is a physical bookable resource
type Court struct {
	ID        int64
	Name      string
	Category  CourtCategory
	CreatedAt time.Time
}
