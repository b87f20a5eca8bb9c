package handler

import (
	"hbnb-api/common"
	"hbnb-api/service"
	"net/http"

	"github.com/gorilla/mux"
)

type CountryHandler struct {
	service *service.CountryService
}

func NewCountryHandler(service *service.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

func (h *CountryHandler) ListCountries(w http.ResponseWriter, r *http.Request) *common.AppError {
	common.WriteJSON(w, http.StatusOK, h.service.List())
	return nil
}

func (h *CountryHandler) GetCountry(w http.ResponseWriter, r *http.Request) *common.AppError {
	country, err := h.service.Get(mux.Vars(r)["code"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve country")
	}
	common.WriteJSON(w, http.StatusOK, country)
	return nil
}

func (h *CountryHandler) ListCountryCities(w http.ResponseWriter, r *http.Request) *common.AppError {
	cities, err := h.service.Cities(r.Context(), mux.Vars(r)["code"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve cities")
	}
	common.WriteJSON(w, http.StatusOK, cities)
	return nil
}
