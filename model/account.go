package model

// Account maps onto the table created by the first schema migration.
type Account struct {
	ID          int     `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:50;not null" json:"name"`
	Description *string `gorm:"size:200" json:"description"`
}

func (Account) TableName() string { return "account" }
