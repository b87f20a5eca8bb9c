package model

type City struct {
	Base
	Name        string `gorm:"size:120;not null;uniqueIndex:idx_city_name_country" json:"name"`
	CountryCode string `gorm:"size:2;not null;uniqueIndex:idx_city_name_country" json:"country_code"`
}
