package entity

// EventLocation is the (event, region) allocation node. Its status is derived
// from its parents: it can only be active while both the event and the region
// are active.
type EventLocation struct {
	Base

	EventID string `gorm:"uniqueIndex:idx_event_location_key"`
	Event   Event  `gorm:"foreignKey:EventID"`

	RegionID string `gorm:"uniqueIndex:idx_event_location_key"`
	Region   Region `gorm:"foreignKey:RegionID"`

	MaxSpin                   int
	TodaySpin                 int
	DailySpinDistributingRate float64

	Status EntityStatus
}
