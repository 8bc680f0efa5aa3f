package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

type ItemHandler struct {
	itemService ports.ItemService
}

func NewItemHandler(itemService ports.ItemService) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// Create adds a new inventory item.
//
// @Summary      Create an inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body      itemRequest  true  "Item details"
// @Success      201   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/items [post]
func (h *ItemHandler) Create(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.itemService.CreateItem(c.Request().Context(), toItemInput(req))
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(http.StatusCreated, toItemResponse(item))
}

// Get returns one item by id.
//
// @Summary      Get an inventory item
// @Tags         items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  itemResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/items/{id} [get]
func (h *ItemHandler) Get(c echo.Context) error {
	item, err := h.itemService.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// List returns a paginated, filterable item listing.
//
// @Summary      List inventory items
// @Tags         items
// @Produce      json
// @Param        search    query     string  false  "Substring match on item name"
// @Param        category  query     string  false  "Category ID filter"
// @Param        status    query     string  false  "Stock status filter"  Enums(in_stock, low_stock, out_of_stock)
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  listItemsResponse
// @Failure      400       {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/items [get]
func (h *ItemHandler) List(c echo.Context) error {
	input := ports.ListItemsInput{
		Search:     c.QueryParam("search"),
		CategoryID: c.QueryParam("category"),
		Status:     c.QueryParam("status"),
	}
	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "page must be a positive integer"})
		}
		input.Page = page
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
		}
		input.Limit = limit
	}

	result, err := h.itemService.ListItems(c.Request().Context(), input)
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(http.StatusOK, toListItemsResponse(result))
}

// Update replaces an item's writable fields.
//
// @Summary      Update an inventory item
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Item ID"
// @Param        body  body      itemRequest  true  "Item details"
// @Success      200   {object}  itemResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/items/{id} [put]
func (h *ItemHandler) Update(c echo.Context) error {
	var req itemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item, err := h.itemService.UpdateItem(c.Request().Context(), c.Param("id"), toItemInput(req))
	if err != nil {
		return itemError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete removes an item.
//
// @Summary      Delete an inventory item
// @Tags         items
// @Param        id  path  string  true  "Item ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/items/{id} [delete]
func (h *ItemHandler) Delete(c echo.Context) error {
	if err := h.itemService.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return itemError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func itemError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrItemNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrSupplierNotFound),
		errors.Is(err, domain.ErrCategoryNotFound):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
