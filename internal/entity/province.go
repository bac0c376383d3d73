package entity

type Province struct {
	Base

	Code string `gorm:"uniqueIndex"`
	Name string

	RegionID string
	Region   Region `gorm:"foreignKey:RegionID"`

	Status EntityStatus
}
