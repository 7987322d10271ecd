package strategy

import "conjoint-survey-be/internal/entity"

const candidateCount = 10

// DOptimal approximates a D-optimal design with a diversity heuristic: it
// draws candidate pairs and keeps the one most dissimilar from everything
// generated so far in this process.
//
// The history accumulates for the strategy's lifetime and is never pruned;
// it is also not synchronized, so a single DOptimal instance must not be
// shared across concurrently running requests. Both are accepted constraints
// for the small experiments this design targets.
type DOptimal struct {
	history [][2]Assignment
}

func NewDOptimal() *DOptimal {
	return &DOptimal{}
}

// diversityScore is the mean attribute-wise dissimilarity of the assignment
// against every historical assignment: 1 - matches/total per history entry.
// An empty history scores a full 1.0.
func diversityScore(assignment Assignment, history []Assignment) float64 {
	if len(history) == 0 {
		return 1.0
	}
	total := 0.0
	for _, past := range history {
		matches := 0
		for key, value := range assignment {
			if past[key] == value {
				matches++
			}
		}
		total += 1.0 - float64(matches)/float64(len(assignment))
	}
	return total / float64(len(history))
}

func (s *DOptimal) GeneratePair(attributes []*entity.Attribute, roundNumber int, sessionSeed string) (Assignment, Assignment) {
	rng := newSeededRand(sessionSeed, roundNumber)

	flatHistory := make([]Assignment, 0, len(s.history)*2)
	for _, pair := range s.history {
		flatHistory = append(flatHistory, pair[0], pair[1])
	}

	var bestA, bestB Assignment
	bestScore := -1.0
	for i := 0; i < candidateCount; i++ {
		a := make(Assignment, len(attributes))
		b := make(Assignment, len(attributes))
		for _, attr := range attributes {
			levels := attr.LevelIds()
			a[attr.Key] = pickLevel(rng, levels)
			b[attr.Key] = pickLevel(rng, levels)
		}
		score := diversityScore(a, flatHistory) + diversityScore(b, flatHistory)
		if score > bestScore {
			bestScore = score
			bestA, bestB = a, b
		}
	}

	if bestA != nil {
		s.history = append(s.history, [2]Assignment{bestA, bestB})
		return bestA, bestB
	}

	// Unreachable with candidateCount > 0 and scores >= 0, kept as a guard.
	a := uniformAssignment(rng, attributes)
	b := uniformAssignment(rng, attributes)
	return a, b
}
