package service

import (
	"context"
	"hbnb-api/model"
	"hbnb-api/repository"
)

type ReviewService struct {
	reviews repository.IReviewRepository
	places  repository.IPlaceRepository
}

func NewReviewService(reviews repository.IReviewRepository, places repository.IPlaceRepository) *ReviewService {
	return &ReviewService{reviews: reviews, places: places}
}

// Create records the actor's review of a place. Hosts cannot review their
// own places and a user reviews a place at most once.
func (s *ReviewService) Create(ctx context.Context, actor Actor, placeID string, req model.CreateReviewRequest) (*model.Review, error) {
	place, err := s.places.GetByID(ctx, placeID)
	if err != nil {
		return nil, wrapRepoError(err, "place")
	}
	if place.HostID == actor.UserID {
		return nil, invalid("you cannot review your own place")
	}

	review := &model.Review{
		PlaceID: placeID,
		UserID:  actor.UserID,
		Comment: req.Comment,
		Rating:  req.Rating,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, wrapRepoError(err, "review")
	}
	return review, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	return review, wrapRepoError(err, "review")
}

func (s *ReviewService) List(ctx context.Context) ([]*model.Review, error) {
	return s.reviews.List(ctx)
}

func (s *ReviewService) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	if _, err := s.places.GetByID(ctx, placeID); err != nil {
		return nil, wrapRepoError(err, "place")
	}
	return s.reviews.ListByPlace(ctx, placeID)
}

// Update changes the review. Only its author or an admin may do so.
func (s *ReviewService) Update(ctx context.Context, actor Actor, id string, req model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, wrapRepoError(err, "review")
	}
	if !actor.CanModify(review.UserID) {
		return nil, ErrForbidden
	}
	if req.Comment != nil {
		review.Comment = *req.Comment
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}
	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, wrapRepoError(err, "review")
	}
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, actor Actor, id string) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return wrapRepoError(err, "review")
	}
	if !actor.CanModify(review.UserID) {
		return ErrForbidden
	}
	return wrapRepoError(s.reviews.Delete(ctx, id), "review")
}
