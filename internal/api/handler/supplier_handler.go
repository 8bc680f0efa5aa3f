package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/domain"
	"github.com/inventorypro/inventory-system/internal/core/ports"
)

type SupplierHandler struct {
	supplierService ports.SupplierService
}

func NewSupplierHandler(supplierService ports.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// Create adds a new supplier.
//
// @Summary      Create a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        body  body      supplierRequest  true  "Supplier details"
// @Success      201   {object}  supplierResponse
// @Failure      400   {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/suppliers [post]
func (h *SupplierHandler) Create(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	supplier, err := h.supplierService.CreateSupplier(c.Request().Context(), toSupplierInput(req))
	if err != nil {
		return supplierError(c, err)
	}
	return c.JSON(http.StatusCreated, toSupplierResponse(supplier))
}

// Get returns one supplier by id.
//
// @Summary      Get a supplier
// @Tags         suppliers
// @Produce      json
// @Param        id   path      string  true  "Supplier ID"
// @Success      200  {object}  supplierResponse
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/suppliers/{id} [get]
func (h *SupplierHandler) Get(c echo.Context) error {
	supplier, err := h.supplierService.GetSupplier(c.Request().Context(), c.Param("id"))
	if err != nil {
		return supplierError(c, err)
	}
	return c.JSON(http.StatusOK, toSupplierResponse(supplier))
}

// List returns all suppliers.
//
// @Summary      List suppliers
// @Tags         suppliers
// @Produce      json
// @Success      200  {array}  supplierResponse
// @Security     BearerAuth
// @Router       /v1/suppliers [get]
func (h *SupplierHandler) List(c echo.Context) error {
	suppliers, err := h.supplierService.ListSuppliers(c.Request().Context())
	if err != nil {
		return supplierError(c, err)
	}
	out := make([]supplierResponse, len(suppliers))
	for i, s := range suppliers {
		out[i] = toSupplierResponse(s)
	}
	return c.JSON(http.StatusOK, out)
}

// Update replaces a supplier's writable fields.
//
// @Summary      Update a supplier
// @Tags         suppliers
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Supplier ID"
// @Param        body  body      supplierRequest  true  "Supplier details"
// @Success      200   {object}  supplierResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/suppliers/{id} [put]
func (h *SupplierHandler) Update(c echo.Context) error {
	var req supplierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	supplier, err := h.supplierService.UpdateSupplier(c.Request().Context(), c.Param("id"), toSupplierInput(req))
	if err != nil {
		return supplierError(c, err)
	}
	return c.JSON(http.StatusOK, toSupplierResponse(supplier))
}

// Delete removes a supplier.
//
// @Summary      Delete a supplier
// @Tags         suppliers
// @Param        id  path  string  true  "Supplier ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c echo.Context) error {
	if err := h.supplierService.DeleteSupplier(c.Request().Context(), c.Param("id")); err != nil {
		return supplierError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func supplierError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSupplierNotFound) {
		return c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
