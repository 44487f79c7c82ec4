package password

import "golang.org/x/crypto/bcrypt"

// DefaultCost matches the work factor the original deployment used; config
// can raise it without touching stored hashes.
const DefaultCost = 10

// Hasher wraps bcrypt with a fixed cost. Each Hash call salts independently,
// so hashing the same plaintext twice yields different digests.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash generates a salted digest of the plaintext.
func (h *Hasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext produced digest. Malformed digests verify
// as false rather than erroring; a corrupt stored hash must read as a wrong
// password, not a server fault.
func (h *Hasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
