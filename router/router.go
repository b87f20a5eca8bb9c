package router

import (
	"hbnb-api/common"
	_ "hbnb-api/docs"
	"hbnb-api/handler"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const APIPrefix = "/api/v1"

// Handlers groups the route-group handlers attached by RegisterRoutes.
type Handlers struct {
	Users     *handler.UserHandler
	Countries *handler.CountryHandler
	Cities    *handler.CityHandler
	Places    *handler.PlaceHandler
	Amenities *handler.AmenityHandler
	Reviews   *handler.ReviewHandler
	Auth      *handler.AuthHandler
}

type appHandler = func(http.ResponseWriter, *http.Request) *common.AppError

// RegisterRoutes attaches the health check, the API docs and the seven route
// groups, each on its own subrouter under /api/v1.
func RegisterRoutes(r *mux.Router, h Handlers, authMW func(http.Handler) http.Handler) {
	public := func(fn appHandler) http.Handler {
		return handler.ErrorHandlingMiddleware(fn)
	}
	protected := func(fn appHandler) http.Handler {
		return authMW(handler.ErrorHandlingMiddleware(fn))
	}
	admin := func(fn appHandler) http.Handler {
		return authMW(handler.AdminMiddleware(handler.ErrorHandlingMiddleware(fn)))
	}

	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := r.PathPrefix(APIPrefix).Subrouter()

	users := api.PathPrefix("/users").Subrouter()
	users.Handle("", admin(h.Users.ListUsers)).Methods(http.MethodGet)
	users.Handle("", public(h.Users.CreateUser)).Methods(http.MethodPost)
	users.Handle("/{id}", public(h.Users.GetUser)).Methods(http.MethodGet)
	users.Handle("/{id}", protected(h.Users.UpdateUser)).Methods(http.MethodPut)
	users.Handle("/{id}", admin(h.Users.DeleteUser)).Methods(http.MethodDelete)
	users.Handle("/{id}/reviews", public(h.Users.ListUserReviews)).Methods(http.MethodGet)

	countries := api.PathPrefix("/countries").Subrouter()
	countries.Handle("", public(h.Countries.ListCountries)).Methods(http.MethodGet)
	countries.Handle("/{code}", public(h.Countries.GetCountry)).Methods(http.MethodGet)
	countries.Handle("/{code}/cities", public(h.Countries.ListCountryCities)).Methods(http.MethodGet)

	cities := api.PathPrefix("/cities").Subrouter()
	cities.Handle("", public(h.Cities.ListCities)).Methods(http.MethodGet)
	cities.Handle("", admin(h.Cities.CreateCity)).Methods(http.MethodPost)
	cities.Handle("/{id}", public(h.Cities.GetCity)).Methods(http.MethodGet)
	cities.Handle("/{id}", admin(h.Cities.UpdateCity)).Methods(http.MethodPut)
	cities.Handle("/{id}", admin(h.Cities.DeleteCity)).Methods(http.MethodDelete)

	places := api.PathPrefix("/places").Subrouter()
	places.Handle("", public(h.Places.ListPlaces)).Methods(http.MethodGet)
	places.Handle("", protected(h.Places.CreatePlace)).Methods(http.MethodPost)
	places.Handle("/{id}", public(h.Places.GetPlace)).Methods(http.MethodGet)
	places.Handle("/{id}", protected(h.Places.UpdatePlace)).Methods(http.MethodPut)
	places.Handle("/{id}", protected(h.Places.DeletePlace)).Methods(http.MethodDelete)
	places.Handle("/{id}/amenities", public(h.Places.ListPlaceAmenities)).Methods(http.MethodGet)
	places.Handle("/{id}/amenities/{amenity_id}", protected(h.Places.AddPlaceAmenity)).Methods(http.MethodPost)
	places.Handle("/{id}/amenities/{amenity_id}", protected(h.Places.RemovePlaceAmenity)).Methods(http.MethodDelete)
	places.Handle("/{id}/reviews", public(h.Places.ListPlaceReviews)).Methods(http.MethodGet)
	places.Handle("/{id}/reviews", protected(h.Places.CreatePlaceReview)).Methods(http.MethodPost)

	amenities := api.PathPrefix("/amenities").Subrouter()
	amenities.Handle("", public(h.Amenities.ListAmenities)).Methods(http.MethodGet)
	amenities.Handle("", admin(h.Amenities.CreateAmenity)).Methods(http.MethodPost)
	amenities.Handle("/{id}", public(h.Amenities.GetAmenity)).Methods(http.MethodGet)
	amenities.Handle("/{id}", admin(h.Amenities.UpdateAmenity)).Methods(http.MethodPut)
	amenities.Handle("/{id}", admin(h.Amenities.DeleteAmenity)).Methods(http.MethodDelete)

	reviews := api.PathPrefix("/reviews").Subrouter()
	reviews.Handle("", public(h.Reviews.ListReviews)).Methods(http.MethodGet)
	reviews.Handle("/{id}", public(h.Reviews.GetReview)).Methods(http.MethodGet)
	reviews.Handle("/{id}", protected(h.Reviews.UpdateReview)).Methods(http.MethodPut)
	reviews.Handle("/{id}", protected(h.Reviews.DeleteReview)).Methods(http.MethodDelete)

	authRoutes := api.PathPrefix("/auth").Subrouter()
	authRoutes.Handle("/login", public(h.Auth.Login)).Methods(http.MethodPost)
	authRoutes.Handle("/me", protected(h.Auth.Me)).Methods(http.MethodGet)
}

// RegisterErrorHandlers makes unmatched routes answer with JSON error bodies.
func RegisterErrorHandlers(r *mux.Router) {
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)
}

// TrimTrailingSlash serves /x/ exactly as /x. The docs UI keeps its slash.
func TrimTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Path
		if len(p) > 1 && strings.HasSuffix(p, "/") && !strings.HasPrefix(p, "/swagger/") {
			r2 := r.Clone(r.Context())
			r2.URL.Path = strings.TrimRight(p, "/")
			if r2.URL.Path == "" {
				r2.URL.Path = "/"
			}
			r2.URL.RawPath = ""
			next.ServeHTTP(w, r2)
			return
		}
		next.ServeHTTP(w, r)
	})
}
