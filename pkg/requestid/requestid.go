// Package requestid generates short, human-memorable account request ids of
// the form XXXX-MMYY.
package requestid

import (
	crand "crypto/rand"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// Alphabet excludes the look-alike characters I, O, 0 and 1.
const Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const (
	prefixLen = 4
	noDate    = "0000"
)

// Length is the length of every generated id.
const Length = prefixLen + 1 + len(noDate)

// Generator produces ids from an injected random source. It is safe for
// concurrent use. Ids are not guaranteed to be unique.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator drawing from src.
func New(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// NewDefault returns a Generator seeded from crypto/rand.
func NewDefault() *Generator {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return New(rand.NewChaCha8(seed))
}

// Generate returns four random alphabet characters, a hyphen, and the month
// and two-digit year of dob. A zero dob yields "0000".
func (g *Generator) Generate(dob time.Time) string {
	var b strings.Builder
	b.Grow(Length)

	g.mu.Lock()
	for range prefixLen {
		b.WriteByte(Alphabet[g.rnd.IntN(len(Alphabet))])
	}
	g.mu.Unlock()

	b.WriteByte('-')
	if dob.IsZero() {
		b.WriteString(noDate)
	} else {
		b.WriteString(dob.Format("0106"))
	}
	return b.String()
}
