package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// User roles
const (
	RoleOwner  = "OWNER"  // Lists and manages properties
	RoleTenant = "TENANT" // Browses and applies to properties
)

// User Model
type User struct {
	ID         string     `gorm:"primaryKey;size:36" json:"id"`               // Primary key (UUID)
	Email      string     `gorm:"uniqueIndex;size:191;not null" json:"email"` // Unique email address
	Name       string     `gorm:"size:191" json:"name"`                       // Display name
	Password   string     `gorm:"not null" json:"-"`                          // Hashed password, never serialized
	Role       string     `gorm:"size:16;default:TENANT" json:"role"`         // Role: OWNER or TENANT
	CreatedAt  time.Time  `json:"createdAt"`                                  // Timestamp of creation
	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`                // Properties listed by this user
}

// BeforeCreate assigns a UUID primary key when none was provided
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString() // Generate a new UUID
	}
	return nil
}
