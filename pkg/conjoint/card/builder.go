// Package card turns strategy output into persistable job cards. The builder
// renders human-readable card text from an attribute assignment; the factory
// pairs it with a strategy to generate and store both sides of a round.
package card

import (
	"strings"
	"time"

	"conjoint-survey-be/internal/entity"
	"conjoint-survey-be/pkg/conjoint/strategy"

	"github.com/google/uuid"
)

// Builder renders job cards against a fixed attribute catalog. The catalog
// order determines the rendered line order.
type Builder struct {
	attributes []*entity.Attribute
}

func NewBuilder(attributes []*entity.Attribute) *Builder {
	return &Builder{attributes: attributes}
}

// RenderText produces the markdown shown to participants: one
// "**DisplayName**: level text" line per catalog attribute, in catalog order.
// Attributes missing from the assignment are skipped; unknown level ids fall
// back to the raw id.
func (b *Builder) RenderText(assignment strategy.Assignment) string {
	lines := make([]string, 0, len(b.attributes))
	for _, attr := range b.attributes {
		levelId, ok := assignment[attr.Key]
		if !ok {
			continue
		}
		lines = append(lines, "**"+attr.DisplayName+"**: "+attr.GetLevelText(levelId))
	}
	return strings.Join(lines, "\n")
}

// Build assembles a complete card entity for one side of a round.
func (b *Builder) Build(sessionId uuid.UUID, label string, roundNumber int, assignment strategy.Assignment) *entity.JobCard {
	return &entity.JobCard{
		Id:           uuid.New(),
		SessionId:    sessionId,
		CardLabel:    label,
		Attributes:   assignment,
		RenderedText: b.RenderText(assignment),
		RoundNumber:  roundNumber,
		CreatedAt:    time.Now(),
	}
}
