package controllers

import (
	"log/slog"
	"net/http"

	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/domain"
)

// CreateStoreRequest is the request body for POST /store
type CreateStoreRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// StoreSuccessResponse is the success response envelope for a single store.
type StoreSuccessResponse struct {
	Data  *domain.Store     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StoreListSuccessResponse is the success response envelope for GET /store (200).
type StoreListSuccessResponse struct {
	Data  []*domain.Store   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MessageResponse is the data returned by delete and logout endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

// MessageSuccessResponse is the success response envelope wrapping a MessageResponse.
type MessageSuccessResponse struct {
	Data  MessageResponse   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// StoreController handles store endpoints.
type StoreController struct {
	Logger  *slog.Logger
	Service domain.StoreService
}

// NewStoreController creates a StoreController with the given logger and service.
func NewStoreController(logger *slog.Logger, svc domain.StoreService) *StoreController {
	return &StoreController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List stores
// @Tags stores
// @Produce json
// @Success 200 {object} controllers.StoreListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /store [get]
func (c *StoreController) List(w http.ResponseWriter, r *http.Request) {
	stores, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, stores)
}

// Create godoc
// @Summary Create a store
// @Description Store names are unique.
// @Tags stores
// @Accept json
// @Produce json
// @Param body body CreateStoreRequest true "Store"
// @Success 201 {object} controllers.StoreSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /store [post]
func (c *StoreController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStoreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	store, err := c.Service.Create(r.Context(), req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, store)
}

// Get godoc
// @Summary Get a store with its items and tags
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} controllers.StoreSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /store/{id} [get]
func (c *StoreController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	store, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, store)
}

// Delete godoc
// @Summary Delete a store
// @Description Deletes the store together with its items and tags.
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /store/{id} [delete]
func (c *StoreController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Store deleted."})
}
