// Package demo generates the simulated values shown in the UI: the fictional
// tenant risk score and the cosmetic tenant activity fields. Nothing here is
// a model or consults real data; the values exist purely for demonstration
// and must stay out of any business logic.
package demo

import (
	"math/rand" // Pseudo-random source for risk scores
)

// Fixed tables the deterministic tenant fields are picked from
var phoneNumbers = []string{
	"+1 (555) 123-4567",
	"+1 (555) 234-5678",
	"+1 (555) 345-6789",
	"+1 (555) 456-7890",
	"+1 (555) 567-8901",
	"+1 (555) 678-9012",
	"+1 (555) 789-0123",
	"+1 (555) 890-1234",
	"+1 (555) 901-2345",
	"+1 (555) 012-3456",
}

var lastActivities = []string{
	"2024-01-15",
	"2024-01-20",
	"2024-01-18",
	"2024-01-10",
	"2024-01-22",
	"2024-01-19",
	"2024-01-21",
	"2024-01-05",
	"2024-01-23",
	"2024-01-17",
}

// RiskScore draws a uniformly distributed integer in [0, 100]. The value is
// fictional: it is not reproducible and carries no predictive semantics.
func RiskScore() int {
	return rand.Intn(101) // 0-100 inclusive
}

// TenantProfile holds the cosmetic display fields attached to a tenant
type TenantProfile struct {
	Phone                 string `json:"phone"`                 // Fictional phone number
	LastActivity          string `json:"lastActivity"`          // Fictional last-activity date
	PropertiesViewed      int    `json:"propertiesViewed"`      // Fictional view count, 1-30
	ApplicationsSubmitted int    `json:"applicationsSubmitted"` // Fictional application count, 0-9
	Status                string `json:"status"`                // ACTIVE or INACTIVE
}

// ProfileFor derives a stable profile from a user id. The same id always
// yields the same profile; a rolling 32-bit hash over the id picks the values.
func ProfileFor(userID string) TenantProfile {
	var h int32 // Rolling hash, wraps at 32 bits
	for _, ch := range userID {
		h = (h << 5) - h + int32(ch) // h*31 + ch
	}
	v := int(h) // Widen before negating to avoid overflow at MinInt32
	if v < 0 {
		v = -v
	}
	return TenantProfile{
		Phone:                 phoneNumbers[v%len(phoneNumbers)],     // Pick a phone number
		LastActivity:          lastActivities[v%len(lastActivities)], // Pick an activity date
		PropertiesViewed:      v%30 + 1,                              // 1-30 properties
		ApplicationsSubmitted: v % 10,                                // 0-9 applications
		Status:                profileStatus(v),                      // Roughly one in five inactive
	}
}

// profileStatus marks every fifth hash bucket inactive
func profileStatus(v int) string {
	if v%5 == 0 {
		return "INACTIVE"
	}
	return "ACTIVE"
}
