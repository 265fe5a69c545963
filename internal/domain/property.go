package domain

import (
	"time" // Timestamps

	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// Property types
const (
	PropertyResidential = "RESIDENTIAL" // Residential unit
	PropertyCoworking   = "COWORKING"   // Coworking space
	PropertyShortTerm   = "SHORT_TERM"  // Short-term rental
)

// Lease types
const (
	LeaseMonthly  = "MONTHLY"  // Month-to-month lease
	LeaseYearly   = "YEARLY"   // Yearly lease
	LeaseFlexible = "FLEXIBLE" // Flexible terms
)

// Property Model
type Property struct {
	ID           string        `gorm:"primaryKey;size:36" json:"id"`        // Primary key (UUID)
	OwnerID      string        `gorm:"size:36;index;not null" json:"ownerId"` // Foreign key to the owning User
	Owner        User          `gorm:"foreignKey:OwnerID" json:"-"`         // Owning user
	Title        string        `gorm:"not null" json:"title"`               // Listing title
	Description  *string       `json:"description"`                         // Optional free-text description
	Location     string        `gorm:"not null" json:"location"`            // Free-text street address
	City         string        `gorm:"size:191;index;not null" json:"city"` // City, used for substring search
	RentAmount   float64       `gorm:"not null" json:"rentAmount"`          // Rent amount, always positive
	PropertyType string        `gorm:"size:32;not null" json:"propertyType"` // RESIDENTIAL, COWORKING or SHORT_TERM
	LeaseType    string        `gorm:"size:32;not null" json:"leaseType"`   // MONTHLY, YEARLY or FLEXIBLE
	IsAvailable  bool          `gorm:"default:true" json:"isAvailable"`     // Whether the listing shows up in public search
	CreatedAt    time.Time     `json:"createdAt"`                           // Timestamp of creation
	// Applications are removed together with the property
	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none was provided
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString() // Generate a new UUID
	}
	return nil
}
