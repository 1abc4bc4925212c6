// Package bag implements the shuffle-bag piece randomizer.
package bag

import (
	"errors"
	"math/rand/v2"

	"termtris/piece"
)

// ErrInvalidSize is returned when a bag is created with no room for pieces.
var ErrInvalidSize = errors.New("bag size must be at least 1")

// Bag hands out piece kinds without replacement. Each fill puts the same
// number of every kind in the bag; once drawn out the bag refills.
//
// kinds[:unique] are the kinds still in the bag. Exhausted kinds are swapped
// past that prefix so a draw never has to skip them.
type Bag struct {
	size      int
	remaining int
	unique    int
	kinds     [7]piece.Kind
	counts    [7]int
	rng       *rand.Rand
}

// New creates an empty bag of the given size drawing from src.
func New(size int, src rand.Source) (*Bag, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	return &Bag{
		size:  size,
		kinds: piece.Kinds,
		rng:   rand.New(src),
	}, nil
}

// Draw removes a random kind from the bag, refilling it first when empty.
func (b *Bag) Draw() piece.Kind {
	if b.Empty() {
		b.fill()
	}

	i := b.rng.IntN(b.unique)
	b.counts[i]--
	b.remaining--

	kind := b.kinds[i]
	if b.counts[i] == 0 {
		b.unique--
		last := b.unique
		b.kinds[i], b.kinds[last] = b.kinds[last], b.kinds[i]
		b.counts[i], b.counts[last] = b.counts[last], b.counts[i]
	}
	return kind
}

// fill gives every kind size/7 copies, rounded up. When size is not a
// multiple of 7 the bag therefore holds more than size pieces.
func (b *Bag) fill() {
	per := b.size / 7
	if b.size%7 != 0 {
		per++
	}
	for i := range b.counts {
		b.counts[i] = per
	}
	b.remaining = per * len(b.counts)
	b.unique = len(b.counts)
}

// Empty reports whether every piece of the current fill has been drawn.
func (b *Bag) Empty() bool {
	return b.remaining == 0
}

// Size returns the configured bag size.
func (b *Bag) Size() int {
	return b.size
}

// Remaining returns how many pieces are left in the current fill.
func (b *Bag) Remaining() int {
	return b.remaining
}

// Count returns how many pieces of kind k are left in the current fill.
func (b *Bag) Count(k piece.Kind) int {
	for i, kind := range b.kinds {
		if kind == k {
			return b.counts[i]
		}
	}
	return 0
}
