package entity

import "github.com/rfphub/backend/pkg/enum"

type GlobalRole string

var (
	RoleSuperAdmin = enum.New(GlobalRole("super_admin"))
	RoleAdmin      = enum.New(GlobalRole("admin"))
	RoleUser       = enum.New(GlobalRole("user"))
)

// GlobalAdminRoles are the platform-wide roles that carry override access to
// every proposal.
var GlobalAdminRoles = []GlobalRole{RoleSuperAdmin, RoleAdmin}

type User struct {
	Base
	Name string `gorm:"unique"`
	Role GlobalRole
}

func (u *User) TableName() string {
	return "users"
}
