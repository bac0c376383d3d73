package entity

import "time"

type Event struct {
	Base

	Code string `gorm:"uniqueIndex"`
	Name string

	StartTime time.Time
	EndTime   time.Time

	Status EntityStatus
}
