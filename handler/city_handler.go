package handler

import (
	"hbnb-api/common"
	"hbnb-api/model"
	"hbnb-api/service"
	"net/http"

	"github.com/gorilla/mux"
)

type CityHandler struct {
	service *service.CityService
}

func NewCityHandler(service *service.CityService) *CityHandler {
	return &CityHandler{service: service}
}

func (h *CityHandler) ListCities(w http.ResponseWriter, r *http.Request) *common.AppError {
	cities, err := h.service.List(r.Context())
	if err != nil {
		return common.Internal("Could not retrieve cities", err)
	}
	common.WriteJSON(w, http.StatusOK, cities)
	return nil
}

func (h *CityHandler) CreateCity(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CityRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	city, err := h.service.Create(r.Context(), req)
	if err != nil {
		return fromServiceError(err, "Could not create city")
	}
	common.WriteJSON(w, http.StatusCreated, city)
	return nil
}

func (h *CityHandler) GetCity(w http.ResponseWriter, r *http.Request) *common.AppError {
	city, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve city")
	}
	common.WriteJSON(w, http.StatusOK, city)
	return nil
}

func (h *CityHandler) UpdateCity(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CityRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}
	city, err := h.service.Update(r.Context(), mux.Vars(r)["id"], req)
	if err != nil {
		return fromServiceError(err, "Could not update city")
	}
	common.WriteJSON(w, http.StatusOK, city)
	return nil
}

func (h *CityHandler) DeleteCity(w http.ResponseWriter, r *http.Request) *common.AppError {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		return fromServiceError(err, "Could not delete city")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
