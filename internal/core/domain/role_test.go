package domain

import "testing"

func TestParseRole_CanonicalAndAliases(t *testing.T) {
	cases := map[string]Role{
		"admin":          RoleAdmin,
		"ADMIN":          RoleAdmin,
		"hotel_owner":    RoleHotelOwner,
		"hotelowner":     RoleHotelOwner,
		"HotelOwner":     RoleHotelOwner,
		"business_owner": RoleBusinessOwner,
		"businessowner":  RoleBusinessOwner,
		"customer":       RoleCustomer,
	}
	for raw, want := range cases {
		if got := ParseRole(raw); got != want {
			t.Errorf("ParseRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestParseRole_UnknownDefaultsToCustomer(t *testing.T) {
	for _, raw := range []string{"", "bogus", "superuser", "hotel owner"} {
		if got := ParseRole(raw); got != RoleCustomer {
			t.Errorf("ParseRole(%q) = %q, want customer", raw, got)
		}
	}
}

func TestParseRole_RoundTripsWireStrings(t *testing.T) {
	for _, r := range []Role{RoleAdmin, RoleHotelOwner, RoleBusinessOwner, RoleCustomer} {
		if got := ParseRole(r.Wire()); got != r {
			t.Errorf("ParseRole(%q.Wire()) = %q, want %q", r, got, r)
		}
	}
}
