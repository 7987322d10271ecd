package strategy

import (
	"strings"

	"conjoint-survey-be/internal/entity"

	gocache "github.com/patrickmn/go-cache"
)

// maxDistinctAttempts bounds the resampling of index B away from index A.
// When the combination space is tiny the bound can be exhausted and ties are
// accepted; with more than a handful of combinations it never triggers.
const maxDistinctAttempts = 100

// FullFactorial materializes the complete Cartesian product of all attribute
// levels and draws two distinct combinations per round. Suited to small
// attribute spaces where full coverage matters.
type FullFactorial struct {
	combinations *gocache.Cache
}

func NewFullFactorial() *FullFactorial {
	return &FullFactorial{
		combinations: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
	}
}

// allCombinations enumerates the Cartesian product, cached per attribute-key
// tuple so a catalog change (different key set) regenerates it.
func (s *FullFactorial) allCombinations(attributes []*entity.Attribute) []Assignment {
	keys := make([]string, len(attributes))
	for i, attr := range attributes {
		keys[i] = attr.Key
	}
	cacheKey := strings.Join(keys, "|")

	if cached, found := s.combinations.Get(cacheKey); found {
		return cached.([]Assignment)
	}

	combos := []Assignment{{}}
	for _, attr := range attributes {
		next := make([]Assignment, 0, len(combos)*len(attr.Levels))
		for _, combo := range combos {
			for _, levelId := range attr.LevelIds() {
				extended := combo.clone()
				extended[attr.Key] = levelId
				next = append(next, extended)
			}
		}
		combos = next
	}

	s.combinations.Set(cacheKey, combos, gocache.NoExpiration)
	return combos
}

func (s *FullFactorial) GeneratePair(attributes []*entity.Attribute, roundNumber int, sessionSeed string) (Assignment, Assignment) {
	combos := s.allCombinations(attributes)
	rng := newSeededRand(sessionSeed, roundNumber)

	n := len(combos)
	if n == 0 {
		return Assignment{}, Assignment{}
	}

	idxA := rng.Intn(n)
	idxB := rng.Intn(n)
	for attempts := 0; idxB == idxA && attempts < maxDistinctAttempts; attempts++ {
		idxB = rng.Intn(n)
	}

	return combos[idxA].clone(), combos[idxB].clone()
}
