package handler

import (
	"errors"
	"hbnb-api/common"
	"hbnb-api/service"
	"net/http"
	"strings"
)

func ErrorHandlingMiddleware(next func(http.ResponseWriter, *http.Request) *common.AppError) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := next(w, r); err != nil {
			err.Send(w)
		}
	}
}

const notFoundMessage = "The requested URL was not found on the server. If you entered the URL manually please check your spelling and try again."

// NotFound answers unmatched URLs.
func NotFound(w http.ResponseWriter, r *http.Request) {
	common.NotFound(notFoundMessage).Send(w)
}

// MethodNotAllowed answers matched URLs requested with an unsupported method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	common.NewAppError(http.StatusMethodNotAllowed, "The method is not allowed for the requested URL.", nil).Send(w)
}

// fromServiceError maps service sentinels onto HTTP errors.
func fromServiceError(err error, fallback string) *common.AppError {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return common.NotFound(capitalize(err.Error()))
	case errors.Is(err, service.ErrConflict):
		return common.NewAppError(http.StatusConflict, capitalize(err.Error()), nil)
	case errors.Is(err, service.ErrForbidden):
		return common.Forbidden("You are not allowed to perform this action")
	case errors.Is(err, service.ErrInvalidInput):
		return common.BadRequest(capitalize(strings.TrimPrefix(err.Error(), service.ErrInvalidInput.Error()+": ")), nil)
	case errors.Is(err, service.ErrInvalidCredentials):
		return common.Unauthorized("Invalid email or password", nil)
	}
	return common.Internal(fallback, err)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
