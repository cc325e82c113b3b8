package controllers

import (
	"log/slog"
	"net/http"

	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/domain"
)

// CreateItemRequest is the request body for POST /item
type CreateItemRequest struct {
	Name    string   `json:"name" validate:"required,max=80"`
	Price   *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
	StoreID int64    `json:"store_id" validate:"required,gt=0"`
	TagIDs  []int64  `json:"tag_ids,omitempty" validate:"omitempty,dive,gt=0"`
}

// PutItemRequest is the request body for PUT /item/{id}. StoreID is only used,
// and then required, when no item exists at id.
type PutItemRequest struct {
	Name    string   `json:"name" validate:"required,max=80"`
	Price   *float64 `json:"price" validate:"required,gte=0,lte=99999999.99"`
	StoreID *int64   `json:"store_id,omitempty" validate:"omitempty,gt=0"`
}

// ItemSuccessResponse is the success response envelope for a single item.
type ItemSuccessResponse struct {
	Data  *domain.Item      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ItemListSuccessResponse is the success response envelope for GET /item (200).
type ItemListSuccessResponse struct {
	Data  []*domain.Item    `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ItemController handles item endpoints.
type ItemController struct {
	Logger  *slog.Logger
	Service domain.ItemService
}

// NewItemController creates an ItemController with the given logger and service.
func NewItemController(logger *slog.Logger, svc domain.ItemService) *ItemController {
	return &ItemController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List items
// @Tags items
// @Produce json
// @Success 200 {object} controllers.ItemListSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item [get]
func (c *ItemController) List(w http.ResponseWriter, r *http.Request) {
	items, err := c.Service.List(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, items)
}

// Create godoc
// @Summary Create an item
// @Description Requires a fresh access token. Optional tag_ids must belong to the same store.
// @Tags items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateItemRequest true "Item"
// @Success 201 {object} controllers.ItemSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.TokenErrorResponse "error: fresh_token_required, token_expired, ..."
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item [post]
func (c *ItemController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.Create(r.Context(), req.Name, *req.Price, req.StoreID, req.TagIDs)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// Get godoc
// @Summary Get an item with its tags
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} controllers.ItemSuccessResponse
// @Failure 401 {object} helpers.TokenErrorResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item/{id} [get]
func (c *ItemController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	item, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, item)
}

// Put godoc
// @Summary Replace or create an item
// @Description Overwrites name and price of the item at id. If none exists it is created at id, which then requires store_id.
// @Tags items
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param body body PutItemRequest true "Item"
// @Success 201 {object} controllers.ItemSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item/{id} [put]
func (c *ItemController) Put(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req PutItemRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	item, err := c.Service.Put(r.Context(), id, domain.ItemUpdate{Name: req.Name, Price: *req.Price, StoreID: req.StoreID})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, item)
}

// Delete godoc
// @Summary Delete an item
// @Description Requires an access token carrying the admin claim.
// @Tags items
// @Produce json
// @Security BearerAuth
// @Param id path int true "Item ID"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 401 {object} helpers.TokenErrorResponse "error: authorization_required"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item/{id} [delete]
func (c *ItemController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Item deleted."})
}
