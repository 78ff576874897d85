package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleNDistinct(t *testing.T) {
	r := New(1)
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}

	for i := 0; i < 100; i++ {
		got := SampleN(r, items, 4)
		require.Len(t, got, 4)

		seen := make(map[int]bool)
		for _, v := range got {
			assert.False(t, seen[v], "sampled %d twice", v)
			seen[v] = true
		}
	}
}

func TestSampleNCapsAtLen(t *testing.T) {
	r := New(1)
	got := SampleN(r, []string{"a", "b"}, 10)
	assert.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, got)
}

func TestBetweenInclusive(t *testing.T) {
	r := New(1)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.Between(2, 5)
		require.GreaterOrEqual(t, v, 2)
		require.LessOrEqual(t, v, 5)
		seen[v] = true
	}
	// Over 1000 draws every value in a 4-wide range shows up.
	assert.Len(t, seen, 4)

	assert.Equal(t, 3, r.Between(3, 3))
	assert.Equal(t, 3, r.Between(3, 1))
}

func TestDeterministicUnderFixedSeed(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
}

func TestEmailSetUnique(t *testing.T) {
	r := New(7)
	set := NewEmailSet()
	set.Claim("ava.brooks@taskloom.dev")

	seen := map[string]bool{"ava.brooks@taskloom.dev": true}
	for i := 0; i < 500; i++ {
		// Deliberately collide on the same name parts every time.
		email := set.Generate(r, "Ava", "Brooks")
		assert.False(t, seen[email], "email %s issued twice", email)
		seen[email] = true
	}
}

func TestChanceExtremes(t *testing.T) {
	r := New(1)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(1))
	}
}
