package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrMismatch = errors.New("password does not match")

//go:generate mockgen -source=password.go -destination=mock/password_mock.go -package=mock
type Hasher interface {
	Hash(plain string) (string, error)
	// Compare returns ErrMismatch when plain does not produce hash.
	Compare(hash, plain string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher falls back to bcrypt.DefaultCost for out-of-range costs.
func NewBcryptHasher(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Compare(hash, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
