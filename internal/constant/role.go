package constant

type UserRole string

// Role is a labeled field only, nothing gates on it yet.
const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)
