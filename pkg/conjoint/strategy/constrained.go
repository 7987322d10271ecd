package strategy

import "conjoint-survey-be/internal/entity"

// Rule is an ordered if/then override: when every condition in If matches the
// assignment, the pairs in Then are force-written over it. Rules let an
// experiment forbid nonsense combinations (e.g. remote work with a commute).
type Rule struct {
	If   map[string]string
	Then map[string]string
}

// ConstrainedRandom draws uniformly like SeededRandom, then applies its rules
// in order, independently to each side.
type ConstrainedRandom struct {
	Rules []Rule
}

func NewConstrainedRandom(rules []Rule) *ConstrainedRandom {
	return &ConstrainedRandom{Rules: rules}
}

func (s *ConstrainedRandom) applyRules(assignment Assignment) Assignment {
	result := assignment.clone()
	for _, rule := range s.Rules {
		met := true
		for key, want := range rule.If {
			if result[key] != want {
				met = false
				break
			}
		}
		if met {
			for key, value := range rule.Then {
				result[key] = value
			}
		}
	}
	return result
}

func (s *ConstrainedRandom) GeneratePair(attributes []*entity.Attribute, roundNumber int, sessionSeed string) (Assignment, Assignment) {
	rng := newSeededRand(sessionSeed, roundNumber)

	a := make(Assignment, len(attributes))
	b := make(Assignment, len(attributes))
	for _, attr := range attributes {
		levels := attr.LevelIds()
		a[attr.Key] = pickLevel(rng, levels)
		b[attr.Key] = pickLevel(rng, levels)
	}

	return s.applyRules(a), s.applyRules(b)
}
