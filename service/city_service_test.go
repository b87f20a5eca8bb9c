package service

import (
	"context"
	"testing"

	"hbnb-api/model"
	"hbnb-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCityService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("normalises the country code", func(t *testing.T) {
		cities := new(mockCityRepo)
		cities.On("Create", mock.MatchedBy(func(c *model.City) bool {
			return c.Name == "Lyon" && c.CountryCode == "FR"
		})).Return(nil).Once()

		svc := NewCityService(cities, NewCountryService(cities), nil)
		city, err := svc.Create(ctx, model.CityRequest{Name: " Lyon ", CountryCode: "fr"})

		require.NoError(t, err)
		assert.Equal(t, "FR", city.CountryCode)
		cities.AssertExpectations(t)
	})

	t.Run("unknown country", func(t *testing.T) {
		cities := new(mockCityRepo)
		svc := NewCityService(cities, NewCountryService(cities), nil)

		_, err := svc.Create(ctx, model.CityRequest{Name: "Atlantis", CountryCode: "QQ"})

		assert.ErrorIs(t, err, ErrInvalidInput)
		cities.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("duplicate city", func(t *testing.T) {
		cities := new(mockCityRepo)
		cities.On("Create", mock.Anything).Return(repository.ErrDuplicate).Once()
		svc := NewCityService(cities, NewCountryService(cities), nil)

		_, err := svc.Create(ctx, model.CityRequest{Name: "Lyon", CountryCode: "FR"})

		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestAmenityService_DeleteEvictsPlaceListing(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	require.NoError(t, mr.Set(placesCacheKey, "[]"))

	amenities := new(mockAmenityRepo)
	amenities.On("Delete", "a-1").Return(nil).Once()
	amenities.On("Delete", "a-9").Return(repository.ErrNotFound).Once()

	svc := NewAmenityService(amenities, rdb)

	assert.ErrorIs(t, svc.Delete(ctx, "a-9"), ErrNotFound)
	assert.True(t, mr.Exists(placesCacheKey))

	assert.NoError(t, svc.Delete(ctx, "a-1"))
	assert.False(t, mr.Exists(placesCacheKey))
}
