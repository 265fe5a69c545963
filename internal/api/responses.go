package api

import (
	"suddenlyspaces/internal/demo"   // Synthetic display data
	"suddenlyspaces/internal/domain" // Importing domain models
	"time"                           // Timestamps
)

// UserSummary is the denormalized owner/tenant view embedded in responses
type UserSummary struct {
	ID    string `json:"id"`    // User ID
	Name  string `json:"name"`  // Display name
	Email string `json:"email"` // Email address
}

// PropertyResponse is a property with its owner summary and, in the owner's
// management view, its applications
type PropertyResponse struct {
	ID           string                `json:"id"`                     // Property ID
	OwnerID      string                `json:"ownerId"`                // Owning user ID
	Title        string                `json:"title"`                  // Listing title
	Description  *string               `json:"description"`            // Optional description
	Location     string                `json:"location"`               // Street address
	City         string                `json:"city"`                   // City
	RentAmount   float64               `json:"rentAmount"`             // Rent amount
	PropertyType string                `json:"propertyType"`           // Property type
	LeaseType    string                `json:"leaseType"`              // Lease type
	IsAvailable  bool                  `json:"isAvailable"`            // Availability flag
	CreatedAt    time.Time             `json:"createdAt"`              // Timestamp of creation
	Owner        UserSummary           `json:"owner"`                  // Owner summary
	Applications []ApplicationResponse `json:"applications,omitempty"` // Only in the owner's view
}

// ApplicationResponse is an application with the summaries the caller's role needs
type ApplicationResponse struct {
	ID         string            `json:"id"`                 // Application ID
	PropertyID string            `json:"propertyId"`         // Property applied to
	TenantID   string            `json:"tenantId"`           // Applying tenant
	Status     string            `json:"status"`             // PENDING, APPROVED or REJECTED
	RiskScore  int               `json:"riskScore"`          // Simulated score
	CreatedAt  time.Time         `json:"createdAt"`          // Timestamp of creation
	Property   *PropertyResponse `json:"property,omitempty"` // For the tenant's view
	Tenant     *UserSummary      `json:"tenant,omitempty"`   // For the owner's view
}

// TenantResponse is a tenant enriched with the fictional display fields
type TenantResponse struct {
	ID                 string `json:"id"`    // User ID
	Name               string `json:"name"`  // Display name, never empty
	Email              string `json:"email"` // Email address
	demo.TenantProfile        // Flattened phone/activity/counts/status
}

// userSummary maps a user to its embedded summary form
func userSummary(u domain.User) UserSummary {
	return UserSummary{
		ID:    u.ID,    // User ID
		Name:  u.Name,  // Display name
		Email: u.Email, // Email address
	}
}

// propertyResponse maps a property with a preloaded Owner to its response form
func propertyResponse(p domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID,                  // Property ID
		OwnerID:      p.OwnerID,             // Owning user ID
		Title:        p.Title,               // Listing title
		Description:  p.Description,         // Optional description
		Location:     p.Location,            // Street address
		City:         p.City,                // City
		RentAmount:   p.RentAmount,          // Rent amount
		PropertyType: p.PropertyType,        // Property type
		LeaseType:    p.LeaseType,           // Lease type
		IsAvailable:  p.IsAvailable,         // Availability flag
		CreatedAt:    p.CreatedAt,           // Timestamp of creation
		Owner:        userSummary(p.Owner),  // Owner summary
	}
}

// propertyResponses maps a page of properties, always yielding a non-nil slice
func propertyResponses(props []domain.Property) []PropertyResponse {
	out := make([]PropertyResponse, 0, len(props)) // Empty pages serialize as []
	for _, p := range props {
		out = append(out, propertyResponse(p))
	}
	return out
}

// propertyWithApplications maps a property including its applications with
// tenant summaries, for the owner's management view
func propertyWithApplications(p domain.Property) PropertyResponse {
	resp := propertyResponse(p)
	resp.Applications = make([]ApplicationResponse, 0, len(p.Applications))
	for _, a := range p.Applications {
		app := applicationResponse(a)
		tenant := userSummary(a.Tenant) // Tenant is preloaded in this view
		app.Tenant = &tenant
		resp.Applications = append(resp.Applications, app)
	}
	return resp
}

// applicationResponse maps the application fields common to both views
func applicationResponse(a domain.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:         a.ID,         // Application ID
		PropertyID: a.PropertyID, // Property applied to
		TenantID:   a.TenantID,   // Applying tenant
		Status:     a.Status,     // Current status
		RiskScore:  a.RiskScore,  // Simulated score
		CreatedAt:  a.CreatedAt,  // Timestamp of creation
	}
}
