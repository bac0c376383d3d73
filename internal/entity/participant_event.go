package entity

// ParticipantEvent is the per-participant entitlement at one location.
// SpinsRemaining never goes below zero; the decrement is guarded in the
// repository.
type ParticipantEvent struct {
	Base

	EventLocationID string        `gorm:"uniqueIndex:idx_participant_event_key"`
	EventLocation   EventLocation `gorm:"foreignKey:EventLocationID"`

	ParticipantID string      `gorm:"uniqueIndex:idx_participant_event_key"`
	Participant   Participant `gorm:"foreignKey:ParticipantID"`

	SpinsRemaining int

	Status EntityStatus
}
