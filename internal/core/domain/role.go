package domain

import "strings"

// Role is the closed set of permission tiers a user can hold.
// Its string value is the canonical wire form used in tokens, responses,
// and the users collection.
type Role string

const (
	RoleAdmin         Role = "admin"
	RoleHotelOwner    Role = "hotel_owner"
	RoleBusinessOwner Role = "business_owner"
	RoleCustomer      Role = "customer"
)

// ParseRole normalises free-form role input to a Role. Matching is
// case-insensitive and accepts the compact spellings "hotelowner" and
// "businessowner". Anything unrecognised, including the empty string,
// resolves to RoleCustomer: registration must not fail over a role typo.
func ParseRole(raw string) Role {
	switch strings.ToLower(raw) {
	case "admin":
		return RoleAdmin
	case "hotel_owner", "hotelowner":
		return RoleHotelOwner
	case "business_owner", "businessowner":
		return RoleBusinessOwner
	default:
		return RoleCustomer
	}
}

// Wire returns the canonical string persisted and encoded into tokens.
func (r Role) Wire() string {
	return string(r)
}
