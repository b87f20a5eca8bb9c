package model

type Place struct {
	Base
	Name              string    `gorm:"size:120;not null" json:"name"`
	Description       string    `gorm:"size:1024" json:"description"`
	Address           string    `gorm:"size:256" json:"address"`
	CityID            string    `gorm:"size:36;not null;index" json:"city_id"`
	HostID            string    `gorm:"size:36;not null;index" json:"host_id"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	NumberOfRooms     int       `gorm:"not null;default:0" json:"number_of_rooms"`
	NumberOfBathrooms int       `gorm:"not null;default:0" json:"number_of_bathrooms"`
	PricePerNight     float64   `gorm:"not null;default:0" json:"price_per_night"`
	MaxGuests         int       `gorm:"not null;default:0" json:"max_guests"`
	City              *City     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Host              *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amenities         []Amenity `gorm:"many2many:place_amenities;constraint:OnDelete:CASCADE" json:"amenities"`
}
