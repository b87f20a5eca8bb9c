package model

type Amenity struct {
	Base
	Name string `gorm:"size:120;not null;uniqueIndex" json:"name"`
}
