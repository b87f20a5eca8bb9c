package handler

import (
	"hbnb-api/common"
	"hbnb-api/model"
	"hbnb-api/service"
	"net/http"
)

type AuthHandler struct {
	auth  *service.AuthService
	users *service.UserService
}

func NewAuthHandler(auth *service.AuthService, users *service.UserService) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

// Login godoc
// @Summary      Log in and receive an access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      model.LoginRequest  true  "Credentials"
// @Success      200          {object}  model.TokenResponse
// @Failure      400          {object}  common.AppError
// @Failure      401          {object}  common.AppError
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.LoginRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	token, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		return fromServiceError(err, "Could not log in")
	}
	common.WriteJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token})
	return nil
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) *common.AppError {
	actor, appErr := actorFrom(r)
	if appErr != nil {
		return appErr
	}
	user, err := h.users.Get(r.Context(), actor.UserID)
	if err != nil {
		return fromServiceError(err, "Could not retrieve user")
	}
	common.WriteJSON(w, http.StatusOK, user)
	return nil
}
