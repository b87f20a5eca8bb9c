package handler

import (
	"hbnb-api/common"
	"hbnb-api/model"
	"hbnb-api/service"
	"net/http"

	"github.com/gorilla/mux"
)

type AmenityHandler struct {
	service *service.AmenityService
}

func NewAmenityHandler(service *service.AmenityService) *AmenityHandler {
	return &AmenityHandler{service: service}
}

func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) *common.AppError {
	amenities, err := h.service.List(r.Context())
	if err != nil {
		return common.Internal("Could not retrieve amenities", err)
	}
	common.WriteJSON(w, http.StatusOK, amenities)
	return nil
}

func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.AmenityRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	amenity, err := h.service.Create(r.Context(), req)
	if err != nil {
		return fromServiceError(err, "Could not create amenity")
	}
	common.WriteJSON(w, http.StatusCreated, amenity)
	return nil
}

func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) *common.AppError {
	amenity, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve amenity")
	}
	common.WriteJSON(w, http.StatusOK, amenity)
	return nil
}

func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.AmenityRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	amenity, err := h.service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		return fromServiceError(err, "Could not update amenity")
	}
	common.WriteJSON(w, http.StatusOK, amenity)
	return nil
}

func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		return fromServiceError(err, "Could not delete amenity")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
