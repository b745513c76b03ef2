package storage

import (
	"testing"

	"staynest-server/models"
)

func TestDemoUsersSatisfyConstraints(t *testing.T) {
	users := DemoUsers()
	if len(users) != 3 {
		t.Fatalf("expected 3 demo users, got %d", len(users))
	}

	seen := map[string]bool{}
	for _, u := range users {
		if err := u.Validate(); err != nil {
			t.Errorf("user %s: %v", u.Email, err)
		}
		if seen[u.Email] {
			t.Errorf("duplicate email in fixtures: %s", u.Email)
		}
		seen[u.Email] = true
	}
}

func TestDemoLookupsSatisfyConstraints(t *testing.T) {
	locations := DemoLocations()
	if len(locations) != 2 {
		t.Fatalf("expected 2 demo locations, got %d", len(locations))
	}
	for _, l := range locations {
		if err := l.Validate(); err != nil {
			t.Errorf("location %s: %v", l.City, err)
		}
	}

	types := DemoPropertyTypes()
	typeNames := map[string]bool{}
	for _, pt := range types {
		if err := pt.Validate(); err != nil {
			t.Errorf("property type %s: %v", pt.TypeName, err)
		}
		if typeNames[pt.TypeName] {
			t.Errorf("duplicate property type name: %s", pt.TypeName)
		}
		typeNames[pt.TypeName] = true
	}

	amenityNames := map[string]bool{}
	for _, a := range DemoAmenities() {
		if err := a.Validate(); err != nil {
			t.Errorf("amenity %s: %v", a.Name, err)
		}
		if amenityNames[a.Name] {
			t.Errorf("duplicate amenity name: %s", a.Name)
		}
		amenityNames[a.Name] = true
	}
}

func TestDemoUserRolesAreKnown(t *testing.T) {
	hosts := 0
	for _, u := range DemoUsers() {
		found := false
		for _, role := range models.UserRoles {
			if u.Role == role {
				found = true
			}
		}
		if !found {
			t.Errorf("user %s has unknown role %q", u.Email, u.Role)
		}
		if u.Role == models.RoleHost {
			hosts++
		}
	}
	if hosts == 0 {
		t.Error("fixtures need at least one host to own the demo properties")
	}
}
