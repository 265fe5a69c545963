package db

import (
	"suddenlyspaces/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// strptr returns a pointer to s, for optional text columns
func strptr(s string) *string { return &s }

// Seed inserts the sample users, properties and applications used for demos.
// Records are matched on their natural keys, so seeding is safe to repeat.
func Seed(gdb *gorm.DB) error {
	logrus.Info("Seeding database...")

	// All sample accounts share the same demo password
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), 12)
	if err != nil {
		return err // Hashing failure
	}

	// Sample users, two owners and two tenants
	users := []domain.User{
		{Email: "owner1@example.com", Name: "John Property Owner", Password: string(hash), Role: domain.RoleOwner},
		{Email: "owner2@example.com", Name: "Sarah Real Estate", Password: string(hash), Role: domain.RoleOwner},
		{Email: "tenant1@example.com", Name: "Mike Renter", Password: string(hash), Role: domain.RoleTenant},
		{Email: "tenant2@example.com", Name: "Lisa Apartment Hunter", Password: string(hash), Role: domain.RoleTenant},
	}
	for i := range users {
		// Create the user unless the email is already taken
		if err := gdb.Where("email = ?", users[i].Email).FirstOrCreate(&users[i]).Error; err != nil {
			return err // Abort on the first failure
		}
	}

	// Sample properties spread across the two owners
	properties := []domain.Property{
		{
			ID:           "sample-property-1",
			Title:        "Modern Downtown Apartment",
			Description:  strptr("Beautiful 2-bedroom apartment in the heart of downtown. Recently renovated with modern amenities."),
			Location:     "123 Main Street",
			City:         "New York",
			RentAmount:   2500,
			PropertyType: domain.PropertyResidential,
			LeaseType:    domain.LeaseMonthly,
			OwnerID:      users[0].ID,
			IsAvailable:  true,
		},
		{
			ID:           "sample-property-2",
			Title:        "Cozy Coworking Space",
			Description:  strptr("Professional coworking space with high-speed internet, meeting rooms, and coffee bar."),
			Location:     "456 Business Ave",
			City:         "San Francisco",
			RentAmount:   800,
			PropertyType: domain.PropertyCoworking,
			LeaseType:    domain.LeaseFlexible,
			OwnerID:      users[1].ID,
			IsAvailable:  true,
		},
		{
			ID:           "sample-property-3",
			Title:        "Luxury Short-term Rental",
			Description:  strptr("Stunning vacation rental with ocean views. Perfect for weekend getaways."),
			Location:     "789 Beach Blvd",
			City:         "Miami",
			RentAmount:   300,
			PropertyType: domain.PropertyShortTerm,
			LeaseType:    domain.LeaseFlexible,
			OwnerID:      users[0].ID,
			IsAvailable:  true,
		},
	}
	for i := range properties {
		// Create the property unless its id already exists
		if err := gdb.Where("id = ?", properties[i].ID).FirstOrCreate(&properties[i]).Error; err != nil {
			return err // Abort on the first failure
		}
	}

	// Sample applications from the two tenants
	applications := []domain.Application{
		{ID: "sample-application-1", PropertyID: properties[0].ID, TenantID: users[2].ID, Status: domain.StatusPending, RiskScore: 75},
		{ID: "sample-application-2", PropertyID: properties[1].ID, TenantID: users[3].ID, Status: domain.StatusApproved, RiskScore: 85},
	}
	for i := range applications {
		// Create the application unless its id already exists
		if err := gdb.Where("id = ?", applications[i].ID).FirstOrCreate(&applications[i]).Error; err != nil {
			return err // Abort on the first failure
		}
	}

	// Log the demo credentials for convenience
	logrus.Info("Database seeded successfully")
	for _, u := range users {
		logrus.WithFields(logrus.Fields{
			"email": u.Email, // Account email
			"role":  u.Role,  // Account role
		}).Info("Sample user (password: password123)")
	}
	return nil
}
