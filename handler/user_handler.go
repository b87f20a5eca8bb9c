package handler

import (
	"hbnb-api/common"
	"hbnb-api/logger"
	"hbnb-api/model"
	"hbnb-api/service"
	"net/http"

	"github.com/gorilla/mux"
)

type UserHandler struct {
	service *service.UserService
}

func NewUserHandler(service *service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers godoc
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   model.User
// @Failure      403  {object}  common.AppError
// @Router       /api/v1/users [get]
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) *common.AppError {
	users, err := h.service.List(r.Context())
	if err != nil {
		return common.Internal("Could not retrieve users", err)
	}
	common.WriteJSON(w, http.StatusOK, users)
	return nil
}

// CreateUser godoc
// @Summary      Register a new user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        user  body      model.CreateUserRequest  true  "User"
// @Success      201   {object}  model.User
// @Failure      400   {object}  common.AppError
// @Failure      409   {object}  common.AppError
// @Router       /api/v1/users [post]
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.CreateUserRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		return fromServiceError(err, "Could not create user")
	}

	logger.Log.WithField("user_id", user.ID).Info("User registered")
	common.WriteJSON(w, http.StatusCreated, user)
	return nil
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	user, err := h.service.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve user")
	}
	common.WriteJSON(w, http.StatusOK, user)
	return nil
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	var req model.UpdateUserRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	user, err := h.service.Update(r.Context(), actor, mux.Vars(r)["id"], req)
	if err != nil {
		return fromServiceError(err, "Could not update user")
	}
	common.WriteJSON(w, http.StatusOK, user)
	return nil
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	if err := h.service.Delete(r.Context(), actor, mux.Vars(r)["id"]); err != nil {
		return fromServiceError(err, "Could not delete user")
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *UserHandler) ListUserReviews(w http.ResponseWriter, r *http.Request) *common.AppError {
	reviews, err := h.service.Reviews(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		return fromServiceError(err, "Could not retrieve reviews")
	}
	common.WriteJSON(w, http.StatusOK, reviews)
	return nil
}
