package models

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(100);not null" json:"-"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Role     Role   `gorm:"type:varchar(20);not null;default:member" json:"role"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
