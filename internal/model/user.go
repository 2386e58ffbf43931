package model

import (
	"time"

	"gorm.io/gorm"
)

// User roles.
const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

// User represents a library member or administrator.
type User struct {
	ID             uint64 `json:"id" gorm:"primaryKey;autoIncrement;comment:用户ID"`
	Email          string `json:"email" gorm:"size:128;not null;uniqueIndex:uk_email;comment:邮箱"`
	HashedPassword string `json:"-" gorm:"size:255;not null;comment:密码Hash"`
	Role           string `json:"role" gorm:"size:16;not null;default:member;comment:角色 member|admin"`
	CreatedAt      int64  `json:"created_at" gorm:"autoCreateTime:milli;comment:创建时间(时间戳)"`
	UpdatedAt      int64  `json:"updated_at" gorm:"autoUpdateTime:milli;comment:更新时间(时间戳)"`
}

// TableName returns the table name for GORM.
func (u *User) TableName() string {
	return "users"
}

// BeforeCreate sets the CreatedAt and UpdatedAt fields.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	now := time.Now().UnixMilli()
	u.CreatedAt = now
	u.UpdatedAt = now
	return
}

// BeforeUpdate sets the UpdatedAt field.
func (u *User) BeforeUpdate(tx *gorm.DB) (err error) {
	u.UpdatedAt = time.Now().UnixMilli()
	return
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserPreference stores a user's preference blob (preferred genres etc.)
// as raw JSON.
type UserPreference struct {
	ID        uint64 `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    uint64 `json:"user_id" gorm:"not null;uniqueIndex:uk_pref_user;comment:用户ID"`
	Data      string `json:"data" gorm:"type:text;comment:偏好JSON"`
	UpdatedAt int64  `json:"updated_at" gorm:"autoUpdateTime:milli"`
}

// TableName returns the table name for GORM.
func (p *UserPreference) TableName() string {
	return "user_preferences"
}
