package repository

import (
	"context"
	"errors"
	"hbnb-api/logger"
	"hbnb-api/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IPlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	GetByID(ctx context.Context, id string) (*model.Place, error)
	List(ctx context.Context) ([]*model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	Delete(ctx context.Context, id string) error
	AddAmenity(ctx context.Context, place *model.Place, amenity *model.Amenity) error
	RemoveAmenity(ctx context.Context, place *model.Place, amenity *model.Amenity) error
}

type PlaceRepository struct {
	DB *gorm.DB
}

func NewPlaceRepository(db *gorm.DB) *PlaceRepository {
	return &PlaceRepository{DB: db}
}

// Create inserts the place row only; amenities are linked separately.
func (r *PlaceRepository) Create(ctx context.Context, place *model.Place) error {
	log := logger.Log.WithFields(logrus.Fields{
		"host_id": place.HostID,
		"city_id": place.CityID,
	})
	log.Debug("Executing query to create a new place")

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(place).Error; err != nil {
		log.WithError(err).Error("Failed to execute create place query")
		return translate(err)
	}
	return nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	var place model.Place
	if err := r.DB.WithContext(ctx).Preload("Amenities").First(&place, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &place, nil
}

func (r *PlaceRepository) List(ctx context.Context) ([]*model.Place, error) {
	var places []*model.Place
	if err := r.DB.WithContext(ctx).Preload("Amenities").Order("created_at").Find(&places).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to execute list places query")
		return nil, err
	}
	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place *model.Place) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(place).Error; err != nil {
		logger.Log.WithError(err).WithField("place_id", place.ID).Error("Failed to execute update place query")
		return translate(err)
	}
	return nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id string) error {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		place := model.Place{Base: model.Base{ID: id}}
		if err := tx.Model(&place).Association("Amenities").Clear(); err != nil {
			return err
		}
		res := tx.Delete(&model.Place{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		logger.Log.WithError(err).WithField("place_id", id).Error("Failed to execute delete place query")
	}
	return err
}

func (r *PlaceRepository) AddAmenity(ctx context.Context, place *model.Place, amenity *model.Amenity) error {
	return r.DB.WithContext(ctx).Model(place).Association("Amenities").Append(amenity)
}

func (r *PlaceRepository) RemoveAmenity(ctx context.Context, place *model.Place, amenity *model.Amenity) error {
	return r.DB.WithContext(ctx).Model(place).Association("Amenities").Delete(amenity)
}
