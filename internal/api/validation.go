package api

import (
	"errors"   // Error unwrapping
	"net/http" // HTTP status codes
	"strings"  // Suffix handling for field names
	"unicode"  // Case conversion for field names

	"github.com/gin-gonic/gin"                    // Gin web framework
	"github.com/go-playground/validator/v10"      // Validation library backing gin's binding
)

// abortBinding reports a binding failure: schema violations get a structured
// per-field response, anything else (e.g. malformed JSON) a generic bad request
func abortBinding(c *gin.Context, err error) {
	if fields := bindingErrors(err); fields != nil {
		// Structured validation failure with per-field messages
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error", "fields": fields})
		return
	}
	// Malformed payload
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
}

// bindingErrors extracts per-field messages from a validator failure,
// or nil when the error is not a validation error
func bindingErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil // Not a schema violation
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		name := jsonName(fe.Field())           // Struct field to JSON field
		fields[name] = fieldMessage(name, fe.Tag()) // Human-readable message
	}
	return fields
}

// jsonName lowercases the first rune of a struct field name to match its JSON key
func jsonName(field string) string {
	if field == "" {
		return field
	}
	r := []rune(field)
	r[0] = unicode.ToLower(r[0])
	name := string(r)
	// Fields named with an ID suffix serialize as "...Id"
	if strings.HasSuffix(name, "ID") {
		name = strings.TrimSuffix(name, "ID") + "Id"
	}
	return name
}

// fieldMessage returns the message reported for a failed field and tag
func fieldMessage(name, tag string) string {
	switch {
	case name == "title":
		return "Title is required"
	case name == "location":
		return "Location is required"
	case name == "city":
		return "City is required"
	case name == "rentAmount":
		return "Rent amount must be positive"
	case name == "propertyType":
		return "Invalid property type"
	case name == "leaseType":
		return "Invalid lease type"
	case name == "email" && tag == "email":
		return "Invalid email address"
	case name == "email":
		return "Email is required"
	case name == "password" && tag == "min":
		return "Password must be at least 8 characters"
	case name == "password":
		return "Password is required"
	case name == "name":
		return "Name is required"
	case name == "role":
		return "Role must be OWNER or TENANT"
	case name == "status":
		return "Invalid status"
	case name == "propertyId":
		return "Property id is required"
	default:
		return "Invalid value"
	}
}
