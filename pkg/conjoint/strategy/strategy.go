// Package strategy implements the randomization strategy family for the
// conjoint experiment design. Every strategy derives its pseudo-random stream
// deterministically from (session seed, round number), so re-generating a
// round always yields the same pair of attribute bundles.
package strategy

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/rand"

	"conjoint-survey-be/internal/entity"
)

// Assignment maps attribute key to the chosen level id for one card side.
type Assignment map[string]string

// Strategy generates an A/B pair of attribute assignments for one round.
// Implementations must be deterministic in (attributes, roundNumber,
// sessionSeed); any internal state beyond that (caches, history) must not
// change the generated pair for repeated identical inputs within a process.
type Strategy interface {
	GeneratePair(attributes []*entity.Attribute, roundNumber int, sessionSeed string) (Assignment, Assignment)
}

// DeriveSeed reduces a session seed and round number to a fixed-width RNG
// seed: the low 32 bits (big-endian tail) of SHA-256("<seed>_<round>").
// The hash reduction is the pinned, portable half of the reproducibility
// contract. The RNG fed by it is math/rand's generator, so bit-exact
// reproduction is only guaranteed for Go reimplementations; the stored cards
// remain the source of truth for what a participant actually saw.
func DeriveSeed(sessionSeed string, roundNumber int) uint32 {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s_%d", sessionSeed, roundNumber)))
	return binary.BigEndian.Uint32(sum[28:32])
}

func newSeededRand(sessionSeed string, roundNumber int) *rand.Rand {
	return rand.New(rand.NewSource(int64(DeriveSeed(sessionSeed, roundNumber))))
}

func pickLevel(rng *rand.Rand, levels []string) string {
	if len(levels) == 0 {
		return ""
	}
	return levels[rng.Intn(len(levels))]
}

// uniformAssignment draws one level per attribute, independently and
// uniformly, consuming one rng value per attribute in catalog order.
func uniformAssignment(rng *rand.Rand, attributes []*entity.Attribute) Assignment {
	assignment := make(Assignment, len(attributes))
	for _, attr := range attributes {
		assignment[attr.Key] = pickLevel(rng, attr.LevelIds())
	}
	return assignment
}

func (a Assignment) clone() Assignment {
	copied := make(Assignment, len(a))
	for k, v := range a {
		copied[k] = v
	}
	return copied
}
