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

func TestReviewService_Create(t *testing.T) {
	ctx := context.Background()
	place := &model.Place{Base: model.Base{ID: "p-1"}, HostID: "host-1"}
	req := model.CreateReviewRequest{Comment: "Great stay", Rating: 5}

	t.Run("success", func(t *testing.T) {
		reviews, places := new(mockReviewRepo), new(mockPlaceRepo)
		places.On("GetByID", "p-1").Return(place, nil).Once()
		reviews.On("Create", mock.MatchedBy(func(r *model.Review) bool {
			return r.PlaceID == "p-1" && r.UserID == "guest-1" && r.Rating == 5
		})).Return(nil).Once()

		review, err := NewReviewService(reviews, places).Create(ctx, Actor{UserID: "guest-1"}, "p-1", req)

		require.NoError(t, err)
		assert.Equal(t, "guest-1", review.UserID)
		reviews.AssertExpectations(t)
	})

	t.Run("host reviewing own place", func(t *testing.T) {
		reviews, places := new(mockReviewRepo), new(mockPlaceRepo)
		places.On("GetByID", "p-1").Return(place, nil).Once()

		_, err := NewReviewService(reviews, places).Create(ctx, Actor{UserID: "host-1"}, "p-1", req)

		assert.ErrorIs(t, err, ErrInvalidInput)
		reviews.AssertNotCalled(t, "Create", mock.Anything)
	})

	t.Run("author no longer exists", func(t *testing.T) {
		reviews, places := new(mockReviewRepo), new(mockPlaceRepo)
		places.On("GetByID", "p-1").Return(place, nil).Once()
		reviews.On("Create", mock.Anything).Return(repository.ErrMissingReference).Once()

		_, err := NewReviewService(reviews, places).Create(ctx, Actor{UserID: "deleted-user"}, "p-1", req)

		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Equal(t, "invalid input: review refers to a record that no longer exists", err.Error())
	})

	t.Run("second review of the same place", func(t *testing.T) {
		reviews, places := new(mockReviewRepo), new(mockPlaceRepo)
		places.On("GetByID", "p-1").Return(place, nil).Once()
		reviews.On("Create", mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := NewReviewService(reviews, places).Create(ctx, Actor{UserID: "guest-1"}, "p-1", req)

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("missing place", func(t *testing.T) {
		reviews, places := new(mockReviewRepo), new(mockPlaceRepo)
		places.On("GetByID", "p-9").Return(nil, repository.ErrNotFound).Once()

		_, err := NewReviewService(reviews, places).Create(ctx, Actor{UserID: "guest-1"}, "p-9", req)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	review := &model.Review{Base: model.Base{ID: "r-1"}, UserID: "guest-1"}

	t.Run("author deletes", func(t *testing.T) {
		reviews := new(mockReviewRepo)
		reviews.On("GetByID", "r-1").Return(review, nil).Once()
		reviews.On("Delete", "r-1").Return(nil).Once()

		assert.NoError(t, NewReviewService(reviews, nil).Delete(ctx, Actor{UserID: "guest-1"}, "r-1"))
		reviews.AssertExpectations(t)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		reviews := new(mockReviewRepo)
		reviews.On("GetByID", "r-1").Return(review, nil).Once()

		err := NewReviewService(reviews, nil).Delete(ctx, Actor{UserID: "other"}, "r-1")

		assert.ErrorIs(t, err, ErrForbidden)
		reviews.AssertNotCalled(t, "Delete", mock.Anything)
	})
}

func TestReviewService_Update(t *testing.T) {
	reviews := new(mockReviewRepo)
	reviews.On("GetByID", "r-1").Return(&model.Review{Base: model.Base{ID: "r-1"}, UserID: "guest-1", Rating: 3}, nil).Once()
	reviews.On("Update", mock.MatchedBy(func(r *model.Review) bool { return r.Rating == 4 })).Return(nil).Once()

	rating := 4
	review, err := NewReviewService(reviews, nil).Update(context.Background(), Actor{UserID: "guest-1"}, "r-1", model.UpdateReviewRequest{Rating: &rating})

	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)
	reviews.AssertExpectations(t)
}
