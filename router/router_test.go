package router_test

import (
	"encoding/json"
	"hbnb-api/auth"
	"hbnb-api/db"
	"hbnb-api/handler"
	"hbnb-api/repository"
	"hbnb-api/router"
	"hbnb-api/service"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	handler http.Handler
	mock    sqlmock.Sqlmock
	tokens  *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gdb, err := db.OpenWithConn(conn, false)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("router-secret", time.Minute)
	hasher := auth.NewHasher(bcrypt.MinCost)

	users := repository.NewUserRepository(gdb)
	cities := repository.NewCityRepository(gdb)
	amenities := repository.NewAmenityRepository(gdb)
	places := repository.NewPlaceRepository(gdb)
	reviews := repository.NewReviewRepository(gdb)

	userService := service.NewUserService(users, reviews, hasher, nil)
	countryService := service.NewCountryService(cities)
	reviewService := service.NewReviewService(reviews, places)

	r := mux.NewRouter()
	router.RegisterRoutes(r, router.Handlers{
		Users:     handler.NewUserHandler(userService),
		Countries: handler.NewCountryHandler(countryService),
		Cities:    handler.NewCityHandler(service.NewCityService(cities, countryService, nil)),
		Places:    handler.NewPlaceHandler(service.NewPlaceService(places, cities, amenities, nil), reviewService),
		Amenities: handler.NewAmenityHandler(service.NewAmenityService(amenities, nil)),
		Reviews:   handler.NewReviewHandler(reviewService),
		Auth:      handler.NewAuthHandler(service.NewAuthService(users, hasher, tokens), userService),
	}, handler.NewAuthMiddleware(tokens))
	router.RegisterErrorHandlers(r)

	return &testServer{handler: router.TrimTrailingSlash(r), mock: mock, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func errorBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body, 2)
	return body
}

func TestUnmatchedRouteReturnsJSON404(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/nope", "/api/v1/nothing", "/api/v2/users"} {
		rr := s.do(t, http.MethodGet, path, "", "")

		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")
		body := errorBody(t, rr)
		assert.Equal(t, "Not found", body["error"])
		assert.NotEmpty(t, body["message"])
	}
}

func TestWrongMethodReturnsJSON405(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/health", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, "Method not allowed", errorBody(t, rr)["error"])
}

func TestMalformedBodyReturnsJSON400(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/v1/auth/login", "{not json", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := errorBody(t, rr)
	assert.Equal(t, "Bad request", body["error"])
	assert.Equal(t, "The browser (or proxy) sent a request that this server could not understand.", body["message"])
}

func TestValidationFailureReturnsJSON400(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodPost, "/api/v1/users", `{"email":"not-an-email","first_name":"A","last_name":"B","password":"short"}`, "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Bad request", errorBody(t, rr)["error"])
}

func TestOverlongPasswordReturnsJSON400(t *testing.T) {
	s := newTestServer(t)
	payload, err := json.Marshal(map[string]string{
		"email":      "jane@example.com",
		"first_name": "Jane",
		"last_name":  "Doe",
		"password":   strings.Repeat("é", 40),
	})
	require.NoError(t, err)

	rr := s.do(t, http.MethodPost, "/api/v1/users", string(payload), "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	body := errorBody(t, rr)
	assert.Equal(t, "Bad request", body["error"])
	assert.Equal(t, "Password must be at most 72 bytes", body["message"])
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestHealthAndTrailingSlash(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/health", "/health/"} {
		rr := s.do(t, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, rr.Code, path)
		assert.JSONEq(t, `{"status":"API is healthy and running"}`, rr.Body.String())
	}
}

func TestCountriesRoutes(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/api/v1/countries/", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var countries []map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &countries))
	assert.Greater(t, len(countries), 200)

	rr = s.do(t, http.MethodGet, "/api/v1/countries/fr", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"code":"FR","name":"France"}`, rr.Body.String())

	rr = s.do(t, http.MethodGet, "/api/v1/countries/00", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	s := newTestServer(t)

	cases := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/places"},
		{http.MethodPut, "/api/v1/places/p-1"},
		{http.MethodPost, "/api/v1/places/p-1/reviews"},
		{http.MethodDelete, "/api/v1/reviews/r-1"},
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodGet, "/api/v1/users"},
	}
	for _, c := range cases {
		rr := s.do(t, c.method, c.path, "{}", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code, c.method+" "+c.path)
		assert.Equal(t, "Unauthorized", errorBody(t, rr)["error"])
	}
}

func TestAdminRoutesRejectRegularUsers(t *testing.T) {
	s := newTestServer(t)
	token, err := s.tokens.Issue("user-1", false)
	require.NoError(t, err)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/api/v1/users"},
		{http.MethodDelete, "/api/v1/users/u-2"},
		{http.MethodPost, "/api/v1/cities"},
		{http.MethodPost, "/api/v1/amenities"},
		{http.MethodDelete, "/api/v1/amenities/a-1"},
	}
	for _, c := range cases {
		rr := s.do(t, c.method, c.path, `{"name":"x"}`, token)
		assert.Equal(t, http.StatusForbidden, rr.Code, c.method+" "+c.path)
	}
}

func TestListAmenitiesReadsDatabase(t *testing.T) {
	s := newTestServer(t)
	now := time.Now()
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "amenities"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at", "name"}).
			AddRow("a-1", now, now, "Wifi").
			AddRow("a-2", now, now, "Pool"))

	rr := s.do(t, http.MethodGet, "/api/v1/amenities", "", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var amenities []map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &amenities))
	assert.Len(t, amenities, 2)
	assert.Equal(t, "Wifi", amenities[0]["name"])
	assert.NoError(t, s.mock.ExpectationsWereMet())
}

func TestGetMissingUserReturns404(t *testing.T) {
	s := newTestServer(t)
	s.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "users"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	rr := s.do(t, http.MethodGet, "/api/v1/users/missing", "", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User not found", errorBody(t, rr)["message"])
}

func TestTrimTrailingSlashLeavesDocsAlone(t *testing.T) {
	var seen string
	h := router.TrimTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Path
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/swagger/", nil))
	assert.Equal(t, "/swagger/", seen)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/places//", nil))
	assert.Equal(t, "/api/v1/places", seen)

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "/", seen)
}
