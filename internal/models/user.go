package models

type UserRole string

const (
	RoleAdmin         UserRole = "admin"
	RoleConsultant    UserRole = "consultant"
	RoleSalesAgent    UserRole = "sales_agent"
	RoleConsultant360 UserRole = "consultant360"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleConsultant, RoleSalesAgent, RoleConsultant360:
		return true
	}
	return false
}

// IsActor reports whether the role earns commissions and may request
// withdrawals. Consultant360 combines the consultant and sales agent
// portals and acts as a regular actor here.
func (r UserRole) IsActor() bool {
	switch r {
	case RoleConsultant, RoleSalesAgent, RoleConsultant360:
		return true
	}
	return false
}

type User struct {
	ID       int64    `json:"-" db:"id"`
	Login    string   `json:"login" db:"login"`
	Password string   `json:"password,omitempty" db:"password_hash"`
	Role     UserRole `json:"role" db:"role"`
}
