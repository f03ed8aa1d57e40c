package models

import "time"

// Role names, ordered from least to most privileged.
const (
	RoleStaff   = "staff"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

var roleRank = map[string]int{
	RoleStaff:   1,
	RoleManager: 2,
	RoleAdmin:   3,
}

// IsValidRole checks if the provided role is one of the known roles.
func IsValidRole(role string) bool {
	_, ok := roleRank[role]
	return ok
}

// RoleSatisfies reports whether role grants at least the access of required.
// Admins satisfy every requirement, managers satisfy manager and staff.
func RoleSatisfies(role, required string) bool {
	have, ok := roleRank[role]
	if !ok {
		return false
	}
	return have >= roleRank[required]
}

// User represents a dashboard user
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	Name         string    `json:"name" db:"name"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// UserProfile is the public view of a User.
type UserProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeedUser is a default account restored by a user reset.
type SeedUser struct {
	Username string
	Password string
	Name     string
	Role     string
}

// DefaultSeedUsers are the accounts available on a fresh install.
var DefaultSeedUsers = []SeedUser{
	{Username: "admin", Password: "password123", Name: "Admin User", Role: RoleAdmin},
	{Username: "manager", Password: "password123", Name: "Restaurant Manager", Role: RoleManager},
	{Username: "chef", Password: "password123", Name: "Head Chef", Role: RoleStaff},
	{Username: "waiter", Password: "password123", Name: "Senior Waiter", Role: RoleStaff},
}
