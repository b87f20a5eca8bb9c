// file: service/place_service.go

package service

import (
	"context"
	"errors"
	"hbnb-api/logger"
	"hbnb-api/model"
	"hbnb-api/repository"

	"github.com/sirupsen/logrus"
)

type PlaceService struct {
	places    repository.IPlaceRepository
	cities    repository.ICityRepository
	amenities repository.IAmenityRepository
	cache     ICacheClient
}

// NewPlaceService builds the service. cache may be nil, which disables
// caching of the place listing.
func NewPlaceService(places repository.IPlaceRepository, cities repository.ICityRepository, amenities repository.IAmenityRepository, cache ICacheClient) *PlaceService {
	return &PlaceService{
		places:    places,
		cities:    cities,
		amenities: amenities,
		cache:     cache,
	}
}

// Create stores a new place hosted by the actor.
func (s *PlaceService) Create(ctx context.Context, actor Actor, req model.CreatePlaceRequest) (*model.Place, error) {
	if err := s.checkCity(ctx, req.CityID); err != nil {
		return nil, err
	}

	place := &model.Place{
		Name:              req.Name,
		Description:       req.Description,
		Address:           req.Address,
		CityID:            req.CityID,
		HostID:            actor.UserID,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		NumberOfRooms:     req.NumberOfRooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		PricePerNight:     req.PricePerNight,
		MaxGuests:         req.MaxGuests,
		Amenities:         []model.Amenity{},
	}
	if err := s.places.Create(ctx, place); err != nil {
		return nil, wrapRepoError(err, "place")
	}

	logger.Log.WithFields(logrus.Fields{
		"place_id": place.ID,
		"host_id":  place.HostID,
	}).Info("Place created")

	cacheDel(ctx, s.cache, placesCacheKey)
	return place, nil
}

func (s *PlaceService) Get(ctx context.Context, id string) (*model.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	return place, wrapRepoError(err, "place")
}

// List returns every place, using a cache-aside strategy when a cache is configured.
func (s *PlaceService) List(ctx context.Context) ([]*model.Place, error) {
	var places []*model.Place
	if cacheGet(ctx, s.cache, placesCacheKey, &places) {
		return places, nil
	}

	places, err := s.places.List(ctx)
	if err != nil {
		return nil, err
	}
	cacheSet(ctx, s.cache, placesCacheKey, places, placesCacheTTL)
	return places, nil
}

// Update changes the place. Only its host or an admin may do so.
func (s *PlaceService) Update(ctx context.Context, actor Actor, id string, req model.UpdatePlaceRequest) (*model.Place, error) {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "place")
	}
	if !actor.CanModify(place.HostID) {
		return nil, ErrForbidden
	}

	if req.CityID != nil && *req.CityID != place.CityID {
		if err := s.checkCity(ctx, *req.CityID); err != nil {
			return nil, err
		}
		place.CityID = *req.CityID
	}
	if req.Name != nil {
		place.Name = *req.Name
	}
	if req.Description != nil {
		place.Description = *req.Description
	}
	if req.Address != nil {
		place.Address = *req.Address
	}
	if req.Latitude != nil {
		place.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		place.Longitude = *req.Longitude
	}
	if req.NumberOfRooms != nil {
		place.NumberOfRooms = *req.NumberOfRooms
	}
	if req.NumberOfBathrooms != nil {
		place.NumberOfBathrooms = *req.NumberOfBathrooms
	}
	if req.PricePerNight != nil {
		place.PricePerNight = *req.PricePerNight
	}
	if req.MaxGuests != nil {
		place.MaxGuests = *req.MaxGuests
	}

	if err := s.places.Update(ctx, place); err != nil {
		return nil, wrapRepoError(err, "place")
	}
	cacheDel(ctx, s.cache, placesCacheKey)
	return place, nil
}

func (s *PlaceService) Delete(ctx context.Context, actor Actor, id string) error {
	place, err := s.places.GetByID(ctx, id)
	if err != nil {
		return wrapRepoError(err, "place")
	}
	if !actor.CanModify(place.HostID) {
		return ErrForbidden
	}
	if err := s.places.Delete(ctx, id); err != nil {
		return wrapRepoError(err, "place")
	}
	cacheDel(ctx, s.cache, placesCacheKey)
	return nil
}

// Amenities lists the amenities linked to the place.
func (s *PlaceService) Amenities(ctx context.Context, placeID string) ([]model.Amenity, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, wrapRepoError(err, "place")
	}
	return place.Amenities, nil
}

// AddAmenity links an amenity to the place. Linking twice is a no-op.
func (s *PlaceService) AddAmenity(ctx context.Context, actor Actor, placeID, amenityID string) (*model.Place, error) {
	place, amenity, err := s.placeAndAmenity(ctx, actor, placeID, amenityID)
	if err != nil {
		return nil, err
	}
	for _, a := range place.Amenities {
		if a.ID == amenity.ID {
			return place, nil
		}
	}
	if err := s.places.AddAmenity(ctx, place, amenity); err != nil {
		return nil, err
	}
	cacheDel(ctx, s.cache, placesCacheKey)
	return s.Get(ctx, placeID)
}

// RemoveAmenity unlinks an amenity from the place.
func (s *PlaceService) RemoveAmenity(ctx context.Context, actor Actor, placeID, amenityID string) error {
	place, amenity, err := s.placeAndAmenity(ctx, actor, placeID, amenityID)
	if err != nil {
		return err
	}
	linked := false
	for _, a := range place.Amenities {
		if a.ID == amenity.ID {
			linked = true
			break
		}
	}
	if !linked {
		return invalid("amenity %s is not linked to place %s", amenityID, placeID)
	}
	if err := s.places.RemoveAmenity(ctx, place, amenity); err != nil {
		return err
	}
	cacheDel(ctx, s.cache, placesCacheKey)
	return nil
}

func (s *PlaceService) placeAndAmenity(ctx context.Context, actor Actor, placeID, amenityID string) (*model.Place, *model.Amenity, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, nil, wrapRepoError(err, "place")
	}
	if !actor.CanModify(place.HostID) {
		return nil, nil, ErrForbidden
	}
	amenity, err := s.amenities.GetByID(ctx, amenityID)
	if err != nil {
		return nil, nil, wrapRepoError(err, "amenity")
	}
	return place, amenity, nil
}

func (s *PlaceService) checkCity(ctx context.Context, cityID string) error {
	if _, err := s.cities.GetByID(ctx, cityID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalid("city %s does not exist", cityID)
		}
		return err
	}
	return nil
}
