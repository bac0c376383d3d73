package entity

type Participant struct {
	Base

	Code string `gorm:"uniqueIndex"`
	Name string

	ProvinceID string
	Province   Province `gorm:"foreignKey:ProvinceID"`

	Status EntityStatus
}
