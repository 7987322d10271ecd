package strategy

import "conjoint-survey-be/internal/entity"

// BalancedRandom guarantees the two cards differ on at least MinDifferences
// attributes, preventing identical or near-identical pairs.
type BalancedRandom struct {
	MinDifferences int
}

func NewBalancedRandom(minDifferences int) *BalancedRandom {
	if minDifferences <= 0 {
		minDifferences = 2
	}
	return &BalancedRandom{MinDifferences: minDifferences}
}

func (s *BalancedRandom) GeneratePair(attributes []*entity.Attribute, roundNumber int, sessionSeed string) (Assignment, Assignment) {
	rng := newSeededRand(sessionSeed, roundNumber)

	a := uniformAssignment(rng, attributes)

	// Shuffle the key list and force the prefix to differ on B.
	keys := make([]string, len(attributes))
	for i, attr := range attributes {
		keys[i] = attr.Key
	}
	rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	mustDiffer := map[string]bool{}
	for i := 0; i < s.MinDifferences && i < len(keys); i++ {
		mustDiffer[keys[i]] = true
	}

	b := make(Assignment, len(attributes))
	for _, attr := range attributes {
		levels := attr.LevelIds()
		if mustDiffer[attr.Key] {
			other := make([]string, 0, len(levels))
			for _, id := range levels {
				if id != a[attr.Key] {
					other = append(other, id)
				}
			}
			// Single-level attributes cannot differ; fall back to the full set.
			if len(other) > 0 {
				b[attr.Key] = pickLevel(rng, other)
			} else {
				b[attr.Key] = pickLevel(rng, levels)
			}
		} else {
			b[attr.Key] = pickLevel(rng, levels)
		}
	}
	return a, b
}
