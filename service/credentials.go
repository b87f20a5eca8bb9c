package service

import "strings"

// bcrypt rejects passwords longer than this many bytes.
const maxPasswordBytes = 72

// normalizeEmail is applied to every email before it is stored or looked up.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashPassword(hasher PasswordHasher, password string) (string, error) {
	if len(password) > maxPasswordBytes {
		return "", invalid("password must be at most %d bytes", maxPasswordBytes)
	}
	return hasher.HashPassword(password)
}
