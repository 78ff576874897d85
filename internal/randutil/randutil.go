// Package randutil provides the seedable randomness helpers used by the
// entity factories. All randomness in the pipeline flows through a single
// *Rand so that a fixed seed reproduces an identical entity graph.
package randutil

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

type Rand struct {
	rng *rand.Rand
}

// New returns a Rand seeded with the given value. A seed of 0 falls back to
// the current time, matching unseeded behavior.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly chosen element of items. Panics on an empty slice,
// which always indicates a programming error in a factory.
func Pick[T any](r *Rand, items []T) T {
	return items[r.rng.Intn(len(items))]
}

// SampleN returns n distinct elements of items drawn without replacement, in
// shuffled order. If n exceeds len(items), all items are returned.
func SampleN[T any](r *Rand, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	idx := r.rng.Perm(len(items))
	out := make([]T, 0, n)
	for _, i := range idx[:n] {
		out = append(out, items[i])
	}
	return out
}

// Chance returns true with probability p (0..1).
func (r *Rand) Chance(p float64) bool {
	return r.rng.Float64() < p
}

// Between returns a uniform int in [lo, hi] inclusive.
func (r *Rand) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.rng.Intn(hi-lo+1)
}

func (r *Rand) Intn(n int) int { return r.rng.Intn(n) }

func (r *Rand) Float64() float64 { return r.rng.Float64() }

// PastTime returns a time uniformly within the given duration before now.
func (r *Rand) PastTime(within time.Duration) time.Time {
	return time.Now().Add(-time.Duration(r.rng.Int63n(int64(within))))
}

// FutureTime returns a time uniformly within the given duration after now.
func (r *Rand) FutureTime(within time.Duration) time.Time {
	return time.Now().Add(time.Duration(r.rng.Int63n(int64(within))))
}

// EmailSet issues globally unique email addresses, regenerating on collision
// against everything it has issued so far.
type EmailSet struct {
	issued map[string]bool
}

func NewEmailSet() *EmailSet {
	return &EmailSet{issued: make(map[string]bool)}
}

// Claim records an externally chosen email (e.g. the fixed test account) so
// generated addresses can never collide with it.
func (s *EmailSet) Claim(email string) {
	s.issued[email] = true
}

// Generate derives an address from the given name parts and guarantees it is
// unique across the set, appending a numeric suffix on collision.
func (s *EmailSet) Generate(r *Rand, first, last string) string {
	base := fmt.Sprintf("%s.%s", strings.ToLower(first), strings.ToLower(last))
	email := base + "@taskloom.dev"
	for s.issued[email] {
		email = fmt.Sprintf("%s%d@taskloom.dev", base, r.Intn(10000))
	}
	s.issued[email] = true
	return email
}
