package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inventorypro/inventory-system/internal/core/domain"
)

func sectionContext(role, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", role)
	return c, rec
}

func TestSectionHandler_List(t *testing.T) {
	h := NewSectionHandler()

	c, rec := sectionContext(domain.RoleManager, "/v1/sections")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp sectionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := []string{"inventory", "suppliers", "alerts"}
	if resp.Role != domain.RoleManager || !reflect.DeepEqual(resp.Sections, want) {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestSectionHandler_List_UnknownRole(t *testing.T) {
	h := NewSectionHandler()

	c, rec := sectionContext("Intern", "/v1/sections")
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp sectionsResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if len(resp.Sections) != 0 {
		t.Fatalf("unknown role must get no sections, got %v", resp.Sections)
	}
}

func TestSectionHandler_Initial(t *testing.T) {
	h := NewSectionHandler()

	cases := []struct {
		role      string
		requested string
		want      string
	}{
		{domain.RoleAdmin, "alerts", "alerts"},
		{domain.RoleEmployee, "suppliers", "dashboard"},
		{domain.RoleManager, "", "inventory"},
	}

	for _, tc := range cases {
		c, rec := sectionContext(tc.role, "/v1/sections/initial?requested="+tc.requested)
		if err := h.Initial(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp initialSectionResponse
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		if resp.Section != tc.want {
			t.Fatalf("role %s requesting %q: got %q, want %q", tc.role, tc.requested, resp.Section, tc.want)
		}
	}
}

func TestSectionHandler_Initial_NoAccess(t *testing.T) {
	h := NewSectionHandler()

	c, rec := sectionContext("Intern", "/v1/sections/initial?requested=dashboard")
	_ = h.Initial(c)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
