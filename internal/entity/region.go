package entity

type Region struct {
	Base

	Code   string `gorm:"uniqueIndex"`
	Name   string
	Status EntityStatus
}
