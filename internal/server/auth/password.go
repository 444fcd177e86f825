package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the reference deployment. Changing it only affects
// newly created digests; existing ones keep their embedded cost.
const bcryptCost = 10

// HashPassword derives a salted one-way digest of password.
func HashPassword(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// CheckPassword reports whether password matches the stored digest.
func CheckPassword(digest, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
