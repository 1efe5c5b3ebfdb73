package auth

import "golang.org/x/crypto/bcrypt"

// maxPasswordBytes is the bcrypt input limit. Longer passwords are cut to this length
// both when hashing and when comparing.
const maxPasswordBytes = 72

// HashPassword hashes a plaintext password with the given bcrypt cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncate(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword reports whether plain matches the stored hash.
func ComparePassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncate(plain)) == nil
}

func truncate(password string) []byte {
	b := []byte(password)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
