package model

// Entities lists the tables created by schema sync. The account table
// belongs to the versioned migrations instead.
func Entities() []interface{} {
	return []interface{}{
		&User{},
		&City{},
		&Amenity{},
		&Place{},
		&Review{},
	}
}
