package service

import (
	"context"
	"hbnb-api/model"

	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(user).Error(0)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockUserRepo) List(ctx context.Context) ([]*model.User, error) {
	args := m.Called()
	return args.Get(0).([]*model.User), args.Error(1)
}
func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(user).Error(0)
}
func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

type mockCityRepo struct{ mock.Mock }

func (m *mockCityRepo) Create(ctx context.Context, city *model.City) error {
	return m.Called(city).Error(0)
}
func (m *mockCityRepo) GetByID(ctx context.Context, id string) (*model.City, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.City), args.Error(1)
}
func (m *mockCityRepo) List(ctx context.Context) ([]*model.City, error) {
	args := m.Called()
	return args.Get(0).([]*model.City), args.Error(1)
}
func (m *mockCityRepo) ListByCountry(ctx context.Context, code string) ([]*model.City, error) {
	args := m.Called(code)
	return args.Get(0).([]*model.City), args.Error(1)
}
func (m *mockCityRepo) Update(ctx context.Context, city *model.City) error {
	return m.Called(city).Error(0)
}
func (m *mockCityRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

type mockAmenityRepo struct{ mock.Mock }

func (m *mockAmenityRepo) Create(ctx context.Context, amenity *model.Amenity) error {
	return m.Called(amenity).Error(0)
}
func (m *mockAmenityRepo) GetByID(ctx context.Context, id string) (*model.Amenity, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Amenity), args.Error(1)
}
func (m *mockAmenityRepo) List(ctx context.Context) ([]*model.Amenity, error) {
	args := m.Called()
	return args.Get(0).([]*model.Amenity), args.Error(1)
}
func (m *mockAmenityRepo) Update(ctx context.Context, amenity *model.Amenity) error {
	return m.Called(amenity).Error(0)
}
func (m *mockAmenityRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

type mockPlaceRepo struct{ mock.Mock }

func (m *mockPlaceRepo) Create(ctx context.Context, place *model.Place) error {
	return m.Called(place).Error(0)
}
func (m *mockPlaceRepo) GetByID(ctx context.Context, id string) (*model.Place, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Place), args.Error(1)
}
func (m *mockPlaceRepo) List(ctx context.Context) ([]*model.Place, error) {
	args := m.Called()
	return args.Get(0).([]*model.Place), args.Error(1)
}
func (m *mockPlaceRepo) Update(ctx context.Context, place *model.Place) error {
	return m.Called(place).Error(0)
}
func (m *mockPlaceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}
func (m *mockPlaceRepo) AddAmenity(ctx context.Context, place *model.Place, amenity *model.Amenity) error {
	return m.Called(place, amenity).Error(0)
}
func (m *mockPlaceRepo) RemoveAmenity(ctx context.Context, place *model.Place, amenity *model.Amenity) error {
	return m.Called(place, amenity).Error(0)
}

type mockReviewRepo struct{ mock.Mock }

func (m *mockReviewRepo) Create(ctx context.Context, review *model.Review) error {
	return m.Called(review).Error(0)
}
func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*model.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Review), args.Error(1)
}
func (m *mockReviewRepo) List(ctx context.Context) ([]*model.Review, error) {
	args := m.Called()
	return args.Get(0).([]*model.Review), args.Error(1)
}
func (m *mockReviewRepo) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	args := m.Called(placeID)
	return args.Get(0).([]*model.Review), args.Error(1)
}
func (m *mockReviewRepo) ListByUser(ctx context.Context, userID string) ([]*model.Review, error) {
	args := m.Called(userID)
	return args.Get(0).([]*model.Review), args.Error(1)
}
func (m *mockReviewRepo) Update(ctx context.Context, review *model.Review) error {
	return m.Called(review).Error(0)
}
func (m *mockReviewRepo) Delete(ctx context.Context, id string) error {
	return m.Called(id).Error(0)
}

// plainHasher stores passwords with a marker prefix so tests stay fast.
type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) { return "hashed:" + password, nil }
func (plainHasher) CheckPasswordHash(password, hash string) bool { return hash == "hashed:"+password }

type stubIssuer struct{}

func (stubIssuer) Issue(userID string, isAdmin bool) (string, error) {
	if isAdmin {
		return "token-admin-" + userID, nil
	}
	return "token-" + userID, nil
}
