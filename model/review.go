package model

type Review struct {
	Base
	PlaceID string `gorm:"size:36;not null;uniqueIndex:idx_review_place_user" json:"place_id"`
	UserID  string `gorm:"size:36;not null;uniqueIndex:idx_review_place_user" json:"user_id"`
	Comment string `gorm:"size:1024" json:"comment"`
	Rating  int    `gorm:"not null" json:"rating"`
	Place   *Place `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User    *User  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
