package entity

// RewardEvent binds a reward's inventory to one location. WonQuantity and
// WonToday are only ever incremented in the same transaction that inserts the
// winning spin history row, so they always equal the count of committed win
// rows referencing this allocation.
type RewardEvent struct {
	Base

	EventLocationID string        `gorm:"uniqueIndex:idx_reward_event_key"`
	EventLocation   EventLocation `gorm:"foreignKey:EventLocationID"`

	RewardID string `gorm:"uniqueIndex:idx_reward_event_key"`
	Reward   Reward `gorm:"foreignKey:RewardID"`

	Quantity      int
	TodayQuantity int
	WonQuantity   int
	WonToday      int
}
