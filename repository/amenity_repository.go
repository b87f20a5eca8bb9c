package repository

import (
	"context"
	"hbnb-api/logger"
	"hbnb-api/model"

	"gorm.io/gorm"
)

type IAmenityRepository interface {
	Create(ctx context.Context, amenity *model.Amenity) error
	GetByID(ctx context.Context, id string) (*model.Amenity, error)
	List(ctx context.Context) ([]*model.Amenity, error)
	Update(ctx context.Context, amenity *model.Amenity) error
	Delete(ctx context.Context, id string) error
}

type AmenityRepository struct {
	DB *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{DB: db}
}

func (r *AmenityRepository) Create(ctx context.Context, amenity *model.Amenity) error {
	if err := r.DB.WithContext(ctx).Create(amenity).Error; err != nil {
		logger.Log.WithError(err).WithField("name", amenity.Name).Error("Failed to execute create amenity query")
		return translate(err)
	}
	return nil
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*model.Amenity, error) {
	var amenity model.Amenity
	if err := r.DB.WithContext(ctx).First(&amenity, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &amenity, nil
}

func (r *AmenityRepository) List(ctx context.Context) ([]*model.Amenity, error) {
	var amenities []*model.Amenity
	if err := r.DB.WithContext(ctx).Order("name").Find(&amenities).Error; err != nil {
		return nil, err
	}
	return amenities, nil
}

func (r *AmenityRepository) Update(ctx context.Context, amenity *model.Amenity) error {
	if err := r.DB.WithContext(ctx).Save(amenity).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Amenity{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
