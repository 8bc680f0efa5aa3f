package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

// SectionHandler exposes the role-to-section access table so clients can
// build their navigation without hardcoding the policy.
type SectionHandler struct{}

func NewSectionHandler() *SectionHandler {
	return &SectionHandler{}
}

// List returns the sections the authenticated user's role may navigate to.
// Unknown roles get an empty list, not an error.
//
// @Summary      List accessible sections
// @Tags         sections
// @Produce      json
// @Success      200  {object}  sectionsResponse
// @Security     BearerAuth
// @Router       /v1/sections [get]
func (h *SectionHandler) List(c echo.Context) error {
	role, _ := c.Get("role").(string)

	sections := domain.AccessibleSections(role)
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = string(s)
	}
	return c.JSON(http.StatusOK, sectionsResponse{Role: role, Sections: out})
}

// Initial resolves the landing section for the authenticated user. When the
// requested section is not allowed the role's first accessible section wins;
// a role with no sections at all gets 403.
//
// @Summary      Resolve the initial section
// @Tags         sections
// @Produce      json
// @Param        requested  query     string  false  "Preferred section"
// @Success      200        {object}  initialSectionResponse
// @Failure      403        {object}  errorResponse
// @Security     BearerAuth
// @Router       /v1/sections/initial [get]
func (h *SectionHandler) Initial(c echo.Context) error {
	role, _ := c.Get("role").(string)
	requested := domain.Section(c.QueryParam("requested"))

	section := domain.SelectInitialSection(role, requested)
	if section == "" {
		return c.JSON(http.StatusForbidden, errorResponse{Error: "forbidden"})
	}
	return c.JSON(http.StatusOK, initialSectionResponse{Section: string(section)})
}
