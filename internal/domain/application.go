package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// Application statuses
const (
	StatusPending  = "PENDING"  // Awaiting owner review
	StatusApproved = "APPROVED" // Accepted by the owner
	StatusRejected = "REJECTED" // Declined by the owner
)

// Application Model
type Application struct {
	ID         string    `gorm:"primaryKey;size:36" json:"id"`                                       // Primary key (UUID)
	PropertyID string    `gorm:"size:36;not null;uniqueIndex:idx_property_tenant" json:"propertyId"` // Foreign key to Property
	Property   Property  `json:"-"`                                                                  // Property applied to
	TenantID   string    `gorm:"size:36;not null;uniqueIndex:idx_property_tenant" json:"tenantId"`   // Foreign key to the applying User
	Tenant     User      `gorm:"foreignKey:TenantID" json:"-"`                                       // Applying tenant
	Status     string    `gorm:"size:16;default:PENDING" json:"status"`                              // PENDING, APPROVED or REJECTED
	RiskScore  int       `json:"riskScore"`                                                          // Simulated 0-100 score, assigned at creation
	CreatedAt  time.Time `json:"createdAt"`                                                          // Timestamp of creation
}

// BeforeCreate assigns a UUID primary key when none was provided
func (a *Application) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString() // Generate a new UUID
	}
	return nil
}
