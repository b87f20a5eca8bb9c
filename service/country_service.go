package service

import (
	"context"
	"fmt"
	"hbnb-api/model"
	"hbnb-api/repository"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// CountryService serves the fixed list of ISO 3166-1 countries, built once
// from CLDR region data.
type CountryService struct {
	cities    repository.ICityRepository
	countries []model.Country
	byCode    map[string]model.Country
}

func NewCountryService(cities repository.ICityRepository) *CountryService {
	s := &CountryService{
		cities: cities,
		byCode: make(map[string]model.Country),
	}

	names := display.English.Regions()
	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string([]rune{a, b})
			region, err := language.ParseRegion(code)
			// ParseRegion canonicalises deprecated codes; keep only exact matches.
			if err != nil || !region.IsCountry() || region.String() != code {
				continue
			}
			country := model.Country{Code: code, Name: names.Name(region)}
			s.countries = append(s.countries, country)
			s.byCode[code] = country
		}
	}
	return s
}

func (s *CountryService) List() []model.Country {
	out := make([]model.Country, len(s.countries))
	copy(out, s.countries)
	return out
}

// Get looks a country up by its alpha-2 code, case-insensitively.
func (s *CountryService) Get(code string) (model.Country, error) {
	country, ok := s.byCode[strings.ToUpper(code)]
	if !ok {
		return model.Country{}, fmt.Errorf("country %w", ErrNotFound)
	}
	return country, nil
}

// Exists reports whether code names a known country.
func (s *CountryService) Exists(code string) bool {
	_, err := s.Get(code)
	return err == nil
}

// Cities lists the cities registered in the country.
func (s *CountryService) Cities(ctx context.Context, code string) ([]*model.City, error) {
	country, err := s.Get(code)
	if err != nil {
		return nil, err
	}
	return s.cities.ListByCountry(ctx, country.Code)
}
