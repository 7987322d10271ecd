package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttributeLevel is one discrete value an attribute can take.
type AttributeLevel struct {
	LevelId     string `json:"level_id"`
	DisplayText string `json:"display_text"`
}

// Attribute is one dimension of a job posting (e.g. compensation) with an
// ordered set of levels. Position fixes the catalog display order.
type Attribute struct {
	Id          uuid.UUID
	Key         string
	DisplayName string
	Levels      []AttributeLevel
	Position    int
	CreatedAt   time.Time
}

// GetLevelText returns the display text for a level id, falling back to the
// raw id when the level is unknown so rendering never fails.
func (a *Attribute) GetLevelText(levelId string) string {
	for _, level := range a.Levels {
		if level.LevelId == levelId {
			return level.DisplayText
		}
	}
	return levelId
}

// LevelIds returns the ordered level ids.
func (a *Attribute) LevelIds() []string {
	ids := make([]string, len(a.Levels))
	for i, level := range a.Levels {
		ids[i] = level.LevelId
	}
	return ids
}
