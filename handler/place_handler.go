package handler

import (
	"hbnb-api/common"
	"hbnb-api/model"
	"hbnb-api/service"
	"net/http"

	"github.com/gorilla/mux"
)

type PlaceHandler struct {
	places  *service.PlaceService
	reviews *service.ReviewService
}

func NewPlaceHandler(places *service.PlaceService, reviews *service.ReviewService) *PlaceHandler {
	return &PlaceHandler{places: places, reviews: reviews}
}

// ListPlaces godoc
// @Summary      List places
// @Tags         places
// @Produce      json
// @Success      200  {array}  model.Place
// @Router       /api/v1/places [get]
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) *common.AppError {
	places, err := h.places.List(r.Context())
	if err != nil {
		return common.Internal("Could not retrieve places", err)
	}
	common.WriteJSON(w, http.StatusOK, places)
	return nil
}

// CreatePlace godoc
// @Summary      Create a place hosted by the caller
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        place  body      model.CreatePlaceRequest  true  "Place"
// @Success      201    {object}  model.Place
// @Failure      400    {object}  common.AppError
// @Failure      401    {object}  common.AppError
// @Router       /api/v1/places [post]
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	var req model.CreatePlaceRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	place, err := h.places.Create(r.Context(), actor, req)
	if err != nil {
		return fromServiceError(err, "Could not create place")
	}

	common.WriteJSON(w, http.StatusCreated, place)
	return nil
}

func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) *common.AppError {
	place, err := h.places.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve place")
	}
	common.WriteJSON(w, http.StatusOK, place)
	return nil
}

func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	var req model.UpdatePlaceRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	place, err := h.places.Update(r.Context(), actor, mux.Vars(r)["id"], req)
	if err != nil {
		return fromServiceError(err, "Could not update place")
	}
	common.WriteJSON(w, http.StatusOK, place)
	return nil
}

func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	if err := h.places.Delete(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		return fromServiceError(err, "Could not delete place")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *PlaceHandler) ListPlaceAmenities(w http.ResponseWriter, r *http.Request) *common.AppError {
	amenities, err := h.places.Amenities(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve amenities")
	}
	common.WriteJSON(w, http.StatusOK, amenities)
	return nil
}

func (h *PlaceHandler) AddPlaceAmenity(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	vars := mux.Vars(r)
	place, err := h.places.AddAmenity(r.Context(), actor, vars["id"], vars["amenity_id"])
	if err != nil {
		return fromServiceError(err, "Could not add amenity")
	}
	common.WriteJSON(w, http.StatusOK, place)
	return nil
}

func (h *PlaceHandler) RemovePlaceAmenity(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	vars := mux.Vars(r)
	if err := h.places.RemoveAmenity(r.Context(), actor, vars["id"], vars["amenity_id"]); err != nil {
		return fromServiceError(err, "Could not remove amenity")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) *common.AppError {
	reviews, err := h.reviews.ListByPlace(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve reviews")
	}
	common.WriteJSON(w, http.StatusOK, reviews)
	return nil
}

// CreatePlaceReview godoc
// @Summary      Review a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string                     true  "Place ID"
// @Param        review  body      model.CreateReviewRequest  true  "Review"
// @Success      201     {object}  model.Review
// @Failure      400     {object}  common.AppError
// @Failure      409     {object}  common.AppError
// @Router       /api/v1/places/{id}/reviews [post]
func (h *PlaceHandler) CreatePlaceReview(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	var req model.CreateReviewRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	review, err := h.reviews.Create(r.Context(), actor, mux.Vars(r)["id"], req)
	if err != nil {
		return fromServiceError(err, "Could not create review")
	}
	common.WriteJSON(w, http.StatusCreated, review)
	return nil
}
