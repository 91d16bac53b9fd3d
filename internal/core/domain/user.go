package domain

import "time"

// UserRole enumerates the roles a user can hold.
type UserRole string

const (
	RoleUser  UserRole = "User"
	RoleAdmin UserRole = "Admin"
)

// UserStatus enumerates the account lifecycle states. Deletion is a status
// change, not a row removal.
type UserStatus string

const (
	UserStatusActive   UserStatus = "Active"
	UserStatusDeactive UserStatus = "Deactive"
	UserStatusDeleted  UserStatus = "Deleted"
)

// ValidUserStatus reports whether s is one of the declared status values.
func ValidUserStatus(s UserStatus) bool {
	switch s {
	case UserStatusActive, UserStatusDeactive, UserStatusDeleted:
		return true
	}
	return false
}

// User represents an application user. Username is the unique identifier.
// Password is stored and compared as the literal submitted string.
// RefreshToken holds the currently valid refresh token, empty when logged out.
type User struct {
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	Address      string     `json:"address"`
	Password     string     `json:"-"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"userStatus"`
	RefreshToken string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UserFilter is the typed search specification for user listing.
// Each non-empty field becomes a contains-match condition.
type UserFilter struct {
	Username string
	Name     string
	Email    string
	Address  string
	Sort     SortSpec
	Paging   PageSpec
}
