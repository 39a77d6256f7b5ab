package models

// Role constants for user authorization.
const (
	RoleUser       = "User"
	RoleAdmin      = "Admin"
	RoleSuperAdmin = "SuperAdmin"
)

var ValidRoles = []string{RoleUser, RoleAdmin, RoleSuperAdmin}

type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	FullName         string `json:"fullName"`
	Role             string `json:"role"` // User, Admin, SuperAdmin
	IsActive         bool   `json:"isActive"`
	IsEmailConfirmed bool   `json:"isEmailConfirmed"`
	CreatedAt        string `json:"createdAt"`
	LastLoginAt      string `json:"lastLoginAt,omitempty"`
}

// UserFilters maps to the /api/admin/users query string.
type UserFilters struct {
	Page     int
	PageSize int
	Search   string
	Role     string `validate:"omitempty,oneof=User Admin SuperAdmin"`
	IsActive *bool
}
