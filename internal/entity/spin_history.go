package entity

import (
	"database/sql"
	"time"
)

// SpinHistory records one committed spin attempt. Rows are immutable after
// creation.
type SpinHistory struct {
	Base

	ParticipantEventID string           `gorm:"index"`
	ParticipantEvent   ParticipantEvent `gorm:"foreignKey:ParticipantEventID"`

	SpinTime time.Time
	Win      bool

	RewardEventID sql.NullString `gorm:"index"`
	GoldenHourID  sql.NullString
}
