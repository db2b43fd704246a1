// Package password wraps bcrypt hashing so the rest of the application treats
// credentials as opaque strings.
package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost is used when callers do not configure an explicit bcrypt cost.
const DefaultCost = bcrypt.DefaultCost

// Hash hashes a plaintext password with the given bcrypt cost.
func Hash(plain string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Compare verifies a plaintext password against its hashed value.
func Compare(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}
