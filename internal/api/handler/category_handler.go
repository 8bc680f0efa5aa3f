package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

// CategoryHandler is a thin CRUD surface over the category repository. There
// is no service layer here, categories carry no business rules.
type CategoryHandler struct {
	repo ports.CategoryRepository
}

func NewCategoryHandler(repo ports.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// Create adds a new category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.repo.Create(c.Request().Context(), &domain.Category{Name: req.Name})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusCreated, categoryResponse{ID: created.ID, Name: created.Name})
}

// List returns all categories.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  categoryResponse
// @Security     BearerAuth
// @Router       /v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.repo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
	out := make([]categoryResponse, len(categories))
	for i, cat := range categories {
		out[i] = categoryResponse{ID: cat.ID, Name: cat.Name}
	}
	return c.JSON(http.StatusOK, out)
}
