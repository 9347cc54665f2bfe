package service

import "math/rand/v2"

// Bounds of generated identifiers: [MinGeneratedID, MaxGeneratedID).
const (
	MinGeneratedID = 1000
	MaxGeneratedID = 9999
)

// randomIDGenerator draws identifiers uniformly from
// [MinGeneratedID, MaxGeneratedID). Collisions with seeded or previously
// generated IDs are not checked.
type randomIDGenerator struct{}

func NewRandomIDGenerator() IDGenerator {
	return randomIDGenerator{}
}

func (randomIDGenerator) NewID() int {
	return MinGeneratedID + rand.IntN(MaxGeneratedID-MinGeneratedID)
}
