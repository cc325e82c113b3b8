package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/delivery/http/middleware"
	"storesapi/internal/domain"
)

// CredentialsRequest is the request body for POST /register and POST /login
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
}

// RefreshResponse is the data returned by POST /refresh
type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

// UserSuccessResponse is the success response envelope for a single user.
type UserSuccessResponse struct {
	Data  *domain.User      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// LoginSuccessResponse is the success response envelope for POST /login (200).
type LoginSuccessResponse struct {
	Data  *domain.TokenPair `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// RefreshSuccessResponse is the success response envelope for POST /refresh (200).
type RefreshSuccessResponse struct {
	Data  RefreshResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// UserController handles registration, token and user endpoints.
type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

// NewUserController creates a UserController with the given logger and service.
func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// requestClaims returns the claims set by the auth middleware. Handlers using it are
// only routed behind Authenticator.Require, so a miss is a wiring bug.
func (c *UserController) requestClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		helpers.WriteTokenError(w, nil)
		return nil, false
	}
	return claims, true
}

// Register godoc
// @Summary Register a user
// @Description Creates a non-admin user. Passwords must be at least 8 characters.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Credentials"
// @Success 201 {object} controllers.UserSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /register [post]
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Returns a fresh access token and a refresh token.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body CredentialsRequest true "Credentials"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /login [post]
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req CredentialsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	pair, err := c.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, pair)
}

// Refresh godoc
// @Summary Exchange a refresh token for an access token
// @Description The returned access token is not fresh.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.RefreshSuccessResponse
// @Failure 401 {object} helpers.TokenErrorResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /refresh [post]
func (c *UserController) Refresh(w http.ResponseWriter, r *http.Request) {
	claims, ok := c.requestClaims(w, r)
	if !ok {
		return
	}
	access, err := c.Service.Refresh(r.Context(), claims)
	if err != nil {
		if domainTokenError(err) {
			helpers.WriteTokenError(w, err)
			return
		}
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, RefreshResponse{AccessToken: access})
}

// Logout godoc
// @Summary Log out
// @Description Revokes the presented access token.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 401 {object} helpers.TokenErrorResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /logout [post]
func (c *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := c.requestClaims(w, r)
	if !ok {
		return
	}
	if err := c.Service.Logout(r.Context(), claims); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Successfully logged out."})
}

// Get godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} controllers.UserSuccessResponse
// @Failure 401 {object} helpers.TokenErrorResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user/{id} [get]
func (c *UserController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	user, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, user)
}

// Delete godoc
// @Summary Delete a user
// @Description Requires an access token carrying the admin claim.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 401 {object} helpers.TokenErrorResponse "error: authorization_required"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /user/{id} [delete]
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "User deleted."})
}

func domainTokenError(err error) bool {
	return errors.Is(err, domain.ErrTokenInvalid) || errors.Is(err, domain.ErrTokenExpired)
}
