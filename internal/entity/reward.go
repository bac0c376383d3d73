package entity

type Reward struct {
	Base

	Code string `gorm:"uniqueIndex"`
	Name string

	EventLocationID string
	EventLocation   EventLocation `gorm:"foreignKey:EventLocationID"`

	Quantity       int
	WinProbability float64

	Status EntityStatus
}
