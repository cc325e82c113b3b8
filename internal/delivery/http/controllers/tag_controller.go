package controllers

import (
	"log/slog"
	"net/http"

	"storesapi/internal/delivery/http/helpers"
	"storesapi/internal/domain"
)

// CreateTagRequest is the request body for POST /store/{id}/tag
type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=80"`
}

// TagSuccessResponse is the success response envelope for a single tag.
type TagSuccessResponse struct {
	Data  *domain.Tag       `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TagListSuccessResponse is the success response envelope for GET /store/{id}/tag (200).
type TagListSuccessResponse struct {
	Data  []*domain.Tag     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// TagController handles tag endpoints and item-tag links.
type TagController struct {
	Logger  *slog.Logger
	Service domain.TagService
}

// NewTagController creates a TagController with the given logger and service.
func NewTagController(logger *slog.Logger, svc domain.TagService) *TagController {
	return &TagController{
		Logger:  logger,
		Service: svc,
	}
}

// ListByStore godoc
// @Summary List the tags of a store
// @Tags tags
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} controllers.TagListSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /store/{id}/tag [get]
func (c *TagController) ListByStore(w http.ResponseWriter, r *http.Request) {
	storeID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	tags, err := c.Service.ListByStore(r.Context(), storeID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tags)
}

// Create godoc
// @Summary Create a tag in a store
// @Description Tag names are unique.
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Store ID"
// @Param body body CreateTagRequest true "Tag"
// @Success 201 {object} controllers.TagSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /store/{id}/tag [post]
func (c *TagController) Create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	var req CreateTagRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tag, err := c.Service.Create(r.Context(), storeID, req.Name)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tag)
}

// Get godoc
// @Summary Get a tag with its items
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} controllers.TagSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tag/{id} [get]
func (c *TagController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	tag, err := c.Service.Get(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tag)
}

// Delete godoc
// @Summary Delete a tag
// @Description Fails while the tag is still linked to any item.
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: tag_in_use"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tag/{id} [delete]
func (c *TagController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Tag deleted."})
}

// Link godoc
// @Summary Link an item to a tag
// @Description Item and tag must belong to the same store.
// @Tags tags
// @Produce json
// @Param item_id path int true "Item ID"
// @Param tag_id path int true "Tag ID"
// @Success 201 {object} controllers.TagSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request or conflict"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item/{item_id}/tag/{tag_id} [post]
func (c *TagController) Link(w http.ResponseWriter, r *http.Request) {
	itemID, ok := helpers.PathID(w, r, "item_id")
	if !ok {
		return
	}
	tagID, ok := helpers.PathID(w, r, "tag_id")
	if !ok {
		return
	}
	tag, err := c.Service.LinkItem(r.Context(), itemID, tagID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tag)
}

// Unlink godoc
// @Summary Remove a tag from an item
// @Tags tags
// @Produce json
// @Param item_id path int true "Item ID"
// @Param tag_id path int true "Tag ID"
// @Success 200 {object} controllers.MessageSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /item/{item_id}/tag/{tag_id} [delete]
func (c *TagController) Unlink(w http.ResponseWriter, r *http.Request) {
	itemID, ok := helpers.PathID(w, r, "item_id")
	if !ok {
		return
	}
	tagID, ok := helpers.PathID(w, r, "tag_id")
	if !ok {
		return
	}
	if err := c.Service.UnlinkItem(r.Context(), itemID, tagID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Item removed from tag."})
}
