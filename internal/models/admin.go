package models

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// Admin account statuses.
const (
	AdminActive   = "active"
	AdminInactive = "inactive"
)

// AdminModel represents a dashboard administrator.
type AdminModel struct {
	Base
	Name     string `json:"admin_name"`
	Email    string `json:"admin_email" gorm:"uniqueIndex;not null"`
	Password string `json:"-"           gorm:"not null"`
	Role     string `json:"admin_role"  gorm:"type:varchar(20);default:admin"`
	Status   string `json:"admin_status" gorm:"type:varchar(20);default:active;index"`
}

func (AdminModel) TableName() string { return "admins" }

// IsActive reports whether the admin may authenticate.
func (a *AdminModel) IsActive() bool { return a.Status == AdminActive }
