package handler

import (
	"hbnb-api/common"
	"hbnb-api/model"
	"hbnb-api/service"
	"net/http"

	"github.com/gorilla/mux"
)

type ReviewHandler struct {
	service *service.ReviewService
}

func NewReviewHandler(service *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) *common.AppError {
	reviews, err := h.service.List(r.Context())
	if err != nil {
		return common.Internal("Could not retrieve reviews", err)
	}
	common.WriteJSON(w, http.StatusOK, reviews)
	return nil
}

func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	review, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve review")
	}
	common.WriteJSON(w, http.StatusOK, review)
	return nil
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	var req model.UpdateReviewRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	review, err := h.service.Update(r.Context(), actor, mux.Vars(r)["id"], req)
	if err != nil {
		return fromServiceError(err, "Could not update review")
	}
	common.WriteJSON(w, http.StatusOK, review)
	return nil
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.Delete(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		return fromServiceError(err, "Could not delete review")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
