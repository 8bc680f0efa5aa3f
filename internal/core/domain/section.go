package domain

// Section identifies a top-level navigable area of the application.
type Section string

const (
	SectionInventory Section = "inventory"
	SectionDashboard Section = "dashboard"
	SectionAnalytics Section = "analytics"
	SectionAlerts    Section = "alerts"
	SectionSuppliers Section = "suppliers"
	SectionSettings  Section = "settings"
)

// roleSections maps each role to its allow-list, in declared order. The order
// matters: SelectInitialSection falls back to the first entry.
var roleSections = map[string][]Section{
	RoleAdmin:    {SectionInventory, SectionDashboard, SectionAnalytics, SectionAlerts, SectionSuppliers, SectionSettings},
	RoleManager:  {SectionInventory, SectionSuppliers, SectionAlerts},
	RoleEmployee: {SectionDashboard, SectionAnalytics},
}

// AccessibleSections returns the sections the given role may navigate to.
// Unrecognized roles (including "") get no access.
func AccessibleSections(role string) []Section {
	sections, ok := roleSections[role]
	if !ok {
		return nil
	}
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// CanAccess reports whether a navigation to target is permitted for role.
func CanAccess(role string, target Section) bool {
	for _, s := range roleSections[role] {
		if s == target {
			return true
		}
	}
	return false
}

// SelectInitialSection returns requested when the role may access it,
// otherwise the role's first accessible section, or "" when the role has
// no access at all.
func SelectInitialSection(role string, requested Section) Section {
	if CanAccess(role, requested) {
		return requested
	}
	sections := roleSections[role]
	if len(sections) == 0 {
		return ""
	}
	return sections[0]
}
