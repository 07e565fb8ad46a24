package utils

import "golang.org/x/crypto/bcrypt"

// GeneratePwdHash hashes a password with a random salt. Two calls with
// the same input produce different hashes.
func GeneratePwdHash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPwdHash reports whether password matches the stored hash.
func CheckPwdHash(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
