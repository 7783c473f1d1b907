// utils/validation.go
package utils

import (
	"regexp"
	"strings"
	"time"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Regular expression for international phone numbers
	// Allows + prefix followed by 7-15 digits
	regex := `^\+?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateEmail checks the basic user@host.tld shape. Empty emails are
// allowed; the field is optional on members.
func ValidateEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRegex.MatchString(email)
}

// ValidateDate checks a YYYY-MM-DD calendar date string.
func ValidateDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
