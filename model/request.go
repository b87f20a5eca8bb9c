// file: model/request.go

package model

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateUserRequest defines the payload for registering a new user.
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email,max=120"`
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name" validate:"required,max=50"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
}

// UpdateUserRequest carries the fields a user may change. Nil fields are left untouched.
// IsAdmin is honoured only when the caller is an admin.
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email,max=120"`
	FirstName *string `json:"first_name" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,max=50"`
	Password  *string `json:"password" validate:"omitempty,min=8,max=72"`
	IsAdmin   *bool   `json:"is_admin"`
}

type CityRequest struct {
	Name        string `json:"name" validate:"required,max=120"`
	CountryCode string `json:"country_code" validate:"required,len=2,alpha"`
}

type AmenityRequest struct {
	Name string `json:"name" validate:"required,max=120"`
}

type CreatePlaceRequest struct {
	Name              string  `json:"name" validate:"required,max=120"`
	Description       string  `json:"description" validate:"max=1024"`
	Address           string  `json:"address" validate:"max=256"`
	CityID            string  `json:"city_id" validate:"required"`
	Latitude          float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude         float64 `json:"longitude" validate:"gte=-180,lte=180"`
	NumberOfRooms     int     `json:"number_of_rooms" validate:"gte=0"`
	NumberOfBathrooms int     `json:"number_of_bathrooms" validate:"gte=0"`
	PricePerNight     float64 `json:"price_per_night" validate:"gte=0"`
	MaxGuests         int     `json:"max_guests" validate:"gte=0"`
}

// UpdatePlaceRequest carries the place fields to change. Nil fields are left untouched.
type UpdatePlaceRequest struct {
	Name              *string  `json:"name" validate:"omitempty,min=1,max=120"`
	Description       *string  `json:"description" validate:"omitempty,max=1024"`
	Address           *string  `json:"address" validate:"omitempty,max=256"`
	CityID            *string  `json:"city_id" validate:"omitempty,min=1"`
	Latitude          *float64 `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	Longitude         *float64 `json:"longitude" validate:"omitempty,gte=-180,lte=180"`
	NumberOfRooms     *int     `json:"number_of_rooms" validate:"omitempty,gte=0"`
	NumberOfBathrooms *int     `json:"number_of_bathrooms" validate:"omitempty,gte=0"`
	PricePerNight     *float64 `json:"price_per_night" validate:"omitempty,gte=0"`
	MaxGuests         *int     `json:"max_guests" validate:"omitempty,gte=0"`
}

type CreateReviewRequest struct {
	Comment string `json:"comment" validate:"required,max=1024"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateReviewRequest carries the review fields to change. Nil fields are left untouched.
type UpdateReviewRequest struct {
	Comment *string `json:"comment" validate:"omitempty,max=1024"`
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}
