package service

import (
	"context"
	"hbnb-api/model"
	"hbnb-api/repository"
	"strings"
)

type AmenityService struct {
	amenities repository.IAmenityRepository
	cache     ICacheClient
}

// NewAmenityService builds the service. cache may be nil; when set, amenity
// changes evict the cached place listing that embeds amenities.
func NewAmenityService(amenities repository.IAmenityRepository, cache ICacheClient) *AmenityService {
	return &AmenityService{amenities: amenities, cache: cache}
}

func (s *AmenityService) Create(ctx context.Context, req model.AmenityRequest) (*model.Amenity, error) {
	amenity := &model.Amenity{Name: strings.TrimSpace(req.Name)}
	if err := s.amenities.Create(ctx, amenity); err != nil {
		return nil, wrapRepoError(err, "amenity")
	}
	return amenity, nil
}

func (s *AmenityService) Get(ctx context.Context, id string) (*model.Amenity, error) {
	amenity, err := s.amenities.GetByID(ctx, id)
	return amenity, wrapRepoError(err, "amenity")
}

func (s *AmenityService) List(ctx context.Context) ([]*model.Amenity, error) {
	return s.amenities.List(ctx)
}

func (s *AmenityService) Update(ctx context.Context, id string, req model.AmenityRequest) (*model.Amenity, error) {
	amenity, err := s.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "amenity")
	}
	amenity.Name = strings.TrimSpace(req.Name)
	if err := s.amenities.Update(ctx, amenity); err != nil {
		return nil, wrapRepoError(err, "amenity")
	}
	cacheDel(ctx, s.cache, placesCacheKey)
	return amenity, nil
}

func (s *AmenityService) Delete(ctx context.Context, id string) error {
	if err := s.amenities.Delete(ctx, id); err != nil {
		return wrapRepoError(err, "amenity")
	}
	cacheDel(ctx, s.cache, placesCacheKey)
	return nil
}
