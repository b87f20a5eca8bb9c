package repository

import (
	"context"
	"hbnb-api/logger"
	"hbnb-api/model"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	List(ctx context.Context) ([]*model.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	log := logger.Log.WithFields(logrus.Fields{
		"place_id": review.PlaceID,
		"user_id":  review.UserID,
	})
	log.Debug("Executing query to create a new review")

	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(review).Error; err != nil {
		log.WithError(err).Error("Failed to execute create review query")
		return translate(err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	if err := r.DB.WithContext(ctx).First(&review, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &review, nil
}

func (r *ReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	return r.find(ctx, r.DB)
}

func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	return r.find(ctx, r.DB.Where("place_id = ?", placeID))
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID string) ([]*model.Review, error) {
	return r.find(ctx, r.DB.Where("user_id = ?", userID))
}

func (r *ReviewRepository) find(ctx context.Context, q *gorm.DB) ([]*model.Review, error) {
	var reviews []*model.Review
	if err := q.WithContext(ctx).Order("created_at").Find(&reviews).Error; err != nil {
		logger.Log.WithError(err).Error("Failed to execute list reviews query")
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) error {
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Save(review).Error; err != nil {
		return translate(err)
	}
	return nil
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	res := r.DB.WithContext(ctx).Delete(&model.Review{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
