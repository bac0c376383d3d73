package entity

import "time"

// GoldenHour is a multiplier window at one location. Windows of the same
// location must not overlap; this is validated on create and update.
type GoldenHour struct {
	Base

	EventLocationID string        `gorm:"index"`
	EventLocation   EventLocation `gorm:"foreignKey:EventLocationID"`

	StartTime  time.Time
	EndTime    time.Time
	Multiplier float64

	Status EntityStatus
}
