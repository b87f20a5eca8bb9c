package service

import (
	"context"
	"hbnb-api/model"
	"hbnb-api/repository"
	"strings"
)

type CityService struct {
	cities    repository.ICityRepository
	countries *CountryService
	cache     ICacheClient
}

// NewCityService builds the service. cache may be nil.
func NewCityService(cities repository.ICityRepository, countries *CountryService, cache ICacheClient) *CityService {
	return &CityService{cities: cities, countries: countries, cache: cache}
}

func (s *CityService) Create(ctx context.Context, req model.CityRequest) (*model.City, error) {
	code := strings.ToUpper(req.CountryCode)
	if !s.countries.Exists(code) {
		return nil, invalid("unknown country code %q", req.CountryCode)
	}

	city := &model.City{Name: strings.TrimSpace(req.Name), CountryCode: code}
	if err := s.cities.Create(ctx, city); err != nil {
		return nil, wrapRepoError(err, "city")
	}
	return city, nil
}

func (s *CityService) Get(ctx context.Context, id string) (*model.City, error) {
	city, err := s.cities.GetByID(ctx, id)
	return city, wrapRepoError(err, "city")
}

func (s *CityService) List(ctx context.Context) ([]*model.City, error) {
	return s.cities.List(ctx)
}

func (s *CityService) Update(ctx context.Context, id string, req model.CityRequest) (*model.City, error) {
	code := strings.ToUpper(req.CountryCode)
	if !s.countries.Exists(code) {
		return nil, invalid("unknown country code %q", req.CountryCode)
	}

	city, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "city")
	}
	city.Name = strings.TrimSpace(req.Name)
	city.CountryCode = code

	if err := s.cities.Update(ctx, city); err != nil {
		return nil, wrapRepoError(err, "city")
	}
	return city, nil
}

func (s *CityService) Delete(ctx context.Context, id string) error {
	if err := s.cities.Delete(ctx, id); err != nil {
		return wrapRepoError(err, "city")
	}
	// Places in the city are deleted with it.
	cacheDel(ctx, s.cache, placesCacheKey)
	return nil
}
