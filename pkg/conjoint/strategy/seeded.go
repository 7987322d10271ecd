package strategy

import "conjoint-survey-be/internal/entity"

// SeededRandom picks a level per attribute independently and uniformly for
// each side. No difference guarantee: A and B may coincide on every attribute.
type SeededRandom struct{}

func NewSeededRandom() *SeededRandom {
	return &SeededRandom{}
}

func (s *SeededRandom) GeneratePair(attributes []*entity.Attribute, roundNumber int, sessionSeed string) (Assignment, Assignment) {
	rng := newSeededRand(sessionSeed, roundNumber)

	a := make(Assignment, len(attributes))
	b := make(Assignment, len(attributes))
	for _, attr := range attributes {
		levels := attr.LevelIds()
		a[attr.Key] = pickLevel(rng, levels)
		b[attr.Key] = pickLevel(rng, levels)
	}
	return a, b
}
