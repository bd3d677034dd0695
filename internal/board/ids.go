package board

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
)

const cardIDPrefix = "card"

// newRandomID returns card-<suffix> where suffix is 8 chars of base32
// (lowercase, no padding). 8 chars base32 ~= 40 bits of space.
func newRandomID() (string, error) {
	var b [5]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return cardIDPrefix + "-" + strings.ToLower(enc.EncodeToString(b[:])), nil
}

// nextCardID assigns a fresh id that collides with no live or retired card.
func (s *Store) nextCardID() string {
	for i := 0; i < 50; i++ {
		id, err := newRandomID()
		if err != nil {
			break
		}
		if !s.idExists(id) {
			return id
		}
	}
	// Extremely unlikely fallback: crypto/rand failed or the space is
	// saturated; degrade to a counting suffix that is still unique.
	for n := 1; ; n++ {
		id := fmt.Sprintf("%s-%d", cardIDPrefix, n)
		if !s.idExists(id) {
			return id
		}
	}
}
