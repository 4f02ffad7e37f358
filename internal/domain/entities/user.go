package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// UserKeyPrefix prefixes every user document key in the KV bucket.
const UserKeyPrefix = "user::"

// UserKey derives the bucket key for a user from their email.
func UserKey(email string) string {
	return UserKeyPrefix + email
}

// UserRole represents user roles
type UserRole string

const (
	UserRoleCustomer UserRole = "customer"
	UserRoleAdmin    UserRole = "admin"
)

// UserProfile is the nested profile block of a user document
type UserProfile struct {
	Addresses   []Address              `json:"addresses"`
	Phone       string                 `json:"phone"`
	Preferences map[string]interface{} `json:"preferences"`
}

// User is the full user document as persisted in the KV bucket.
// The password field holds the bcrypt hash, never plaintext.
type User struct {
	Type      string      `json:"type"`
	Email     string      `json:"email"`
	Password  string      `json:"password"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      UserRole    `json:"role"`
	IsActive  bool        `json:"isActive"`
	Profile   UserProfile `json:"profile"`
	LastLogin null.Time   `json:"lastLogin,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// UserSummary is the public-safe shape returned by auth endpoints
type UserSummary struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Role      UserRole `json:"role"`
}

// Summary returns the public-safe view of a user stored under key
func (u *User) Summary(key string) *UserSummary {
	return &UserSummary{
		ID:        key,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}

// UserProfileView is the authenticated profile response, without the hash
type UserProfileView struct {
	ID        string      `json:"id"`
	Email     string      `json:"email"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Role      UserRole    `json:"role"`
	Profile   UserProfile `json:"profile"`
	CreatedAt time.Time   `json:"createdAt"`
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents an authentication response
type AuthResponse struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

// UserRegistration is the document-store projection of a registration,
// kept so compliance reporting can range-count sign-ups.
type UserRegistration struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
