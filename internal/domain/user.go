package domain

// Role user role
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleStaff    Role = "STAFF"
	RoleAdmin    Role = "ADMIN"
)

// User account as seen by the scheduling core
type User struct {
	ID       int64
	Username string
	FullName string
	Role     Role
}

func (u *User) IsStaff() bool {
	return u.Role == RoleStaff
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
