package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password with bcrypt. The empty password maps to the
// empty string, which the rest of the system treats as the "no password"
// sentinel on a mapping record.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password produced hash. The empty-hash
// sentinel never verifies against anything.
func CheckPassword(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
