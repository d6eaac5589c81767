package domain

import "time"

// User is a registered club member. The national ID number (DNI) is the
// primary key; there is deliberately no surrogate ID.
type User struct {
	DNI          string
	Name         string
	PasswordHash string // argon2 encoded
	CreatedAt    time.Time
}

// DNILength is the exact number of digits a valid DNI has.
const DNILength = 8

// ValidDNI reports whether s is exactly eight ASCII digits.
func ValidDNI(s string) bool {
	if len(s) != DNILength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
