package domain

import (
	"reflect"
	"testing"
)

func TestAccessibleSections(t *testing.T) {
	cases := []struct {
		role string
		want []Section
	}{
		{RoleAdmin, []Section{SectionInventory, SectionDashboard, SectionAnalytics, SectionAlerts, SectionSuppliers, SectionSettings}},
		{RoleManager, []Section{SectionInventory, SectionSuppliers, SectionAlerts}},
		{RoleEmployee, []Section{SectionDashboard, SectionAnalytics}},
		{"Intern", nil},
		{"", nil},
	}

	for _, tc := range cases {
		got := AccessibleSections(tc.role)
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("AccessibleSections(%q) = %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestAccessibleSections_ReturnsCopy(t *testing.T) {
	first := AccessibleSections(RoleManager)
	first[0] = SectionSettings

	second := AccessibleSections(RoleManager)
	if second[0] != SectionInventory {
		t.Fatalf("mutating a returned slice leaked into the table: %v", second)
	}
}

func TestCanAccess(t *testing.T) {
	if !CanAccess(RoleManager, SectionInventory) {
		t.Fatalf("expected Manager to access inventory")
	}
	if CanAccess(RoleManager, SectionSettings) {
		t.Fatalf("expected Manager to be denied settings")
	}
	if CanAccess(RoleEmployee, SectionSuppliers) {
		t.Fatalf("expected Employee to be denied suppliers")
	}
	if CanAccess("Intern", SectionDashboard) {
		t.Fatalf("expected unknown role to be denied everything")
	}
}

func TestSelectInitialSection(t *testing.T) {
	cases := []struct {
		role      string
		requested Section
		want      Section
	}{
		{RoleAdmin, SectionAlerts, SectionAlerts},
		{RoleEmployee, SectionSuppliers, SectionDashboard},
		{RoleManager, SectionAnalytics, SectionInventory},
		{RoleManager, "", SectionInventory},
		{"Intern", SectionDashboard, ""},
	}

	for _, tc := range cases {
		if got := SelectInitialSection(tc.role, tc.requested); got != tc.want {
			t.Fatalf("SelectInitialSection(%q, %q) = %q, want %q", tc.role, tc.requested, got, tc.want)
		}
	}
}
