package repository

import (
	"context"
	"hbnb-api/logger"
	"hbnb-api/model"

	"gorm.io/gorm"
)

type ICityRepository interface {
	Create(ctx context.Context, city *model.City) error
	GetByID(ctx context.Context, id string) (*model.City, error)
	List(ctx context.Context) ([]*model.City, error)
	ListByCountry(ctx context.Context, countryCode string) ([]*model.City, error)
	Update(ctx context.Context, city *model.City) error
	Delete(ctx context.Context, id string) error
}

type CityRepository struct {
	DB *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{DB: db}
}

func (r *CityRepository) Create(ctx context.Context, city *model.City) error {
	if err := r.DB.WithContext(ctx).Create(city).Error; err != nil {
		logger.Log.WithError(err).WithField("name", city.Name).Error("Failed to execute create city query")
		return translate(err)
	}
	return nil
}

func (r *CityRepository) GetByID(ctx context.Context, id string) (*model.City, error) {
	var city model.City
	if err := r.DB.WithContext(ctx).First(&city, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &city, nil
}

func (r *CityRepository) List(ctx context.Context) ([]*model.City, error) {
	var cities []*model.City
	if err := r.DB.WithContext(ctx).Order("name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepository) ListByCountry(ctx context.Context, countryCode string) ([]*model.City, error) {
	var cities []*model.City
	err := r.DB.WithContext(ctx).Where("country_code = ?", countryCode).Order("name").Find(&cities).Error
	if err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *CityRepository) Update(ctx context.Context, city *model.City) error {
	if err := r.DB.WithContext(ctx).Save(city).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *CityRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.City{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
