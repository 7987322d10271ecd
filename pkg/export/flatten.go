// Package export flattens stored conjoint choices and cards into an
// analysis-ready wide dataset and encodes it into the delivery formats
// (csv, json, R script, xlsx).
package export

import (
	"sort"
	"time"

	"conjoint-survey-be/internal/entity"
)

// Row is one flattened choice: the decision plus every attribute of both
// cards, keyed by raw attribute key. Adapters prefix A/B columns themselves.
type Row struct {
	SessionId      string
	RoundNumber    int
	Choice         string
	ChoseA         int
	ResponseTimeMs int
	Timestamp      string
	AttributesA    map[string]string
	AttributesB    map[string]string
}

// Dataset is the flattened export: rows in choice order plus the count of
// choices skipped because one of their cards was missing.
type Dataset struct {
	Rows          []Row
	Skipped       int
	attributeKeys []string
}

type cardKey struct {
	session string
	round   int
	label   string
}

// Flatten pairs each choice with its two sibling cards. Choices missing
// either card are skipped and counted, never surfaced as errors; the stored
// data stays authoritative and the export degrades to the rows it can prove.
// Row order follows the input choice order.
func Flatten(choices []*entity.ConjointChoice, cards []*entity.JobCard) *Dataset {
	index := make(map[cardKey]*entity.JobCard, len(cards))
	for _, card := range cards {
		index[cardKey{card.SessionId.String(), card.RoundNumber, card.CardLabel}] = card
	}

	keySet := map[string]bool{}
	ds := &Dataset{Rows: make([]Row, 0, len(choices))}
	for _, choice := range choices {
		session := choice.SessionId.String()
		cardA := index[cardKey{session, choice.RoundNumber, entity.CardLabelA}]
		cardB := index[cardKey{session, choice.RoundNumber, entity.CardLabelB}]
		if cardA == nil || cardB == nil {
			ds.Skipped++
			continue
		}

		choseA := 0
		if choice.Choice == entity.CardLabelA {
			choseA = 1
		}
		ds.Rows = append(ds.Rows, Row{
			SessionId:      session,
			RoundNumber:    choice.RoundNumber,
			Choice:         choice.Choice,
			ChoseA:         choseA,
			ResponseTimeMs: choice.ResponseTimeMs,
			Timestamp:      choice.Timestamp.UTC().Format(time.RFC3339),
			AttributesA:    cardA.Attributes,
			AttributesB:    cardB.Attributes,
		})
		for key := range cardA.Attributes {
			keySet[key] = true
		}
		for key := range cardB.Attributes {
			keySet[key] = true
		}
	}

	ds.attributeKeys = make([]string, 0, len(keySet))
	for key := range keySet {
		ds.attributeKeys = append(ds.attributeKeys, key)
	}
	sort.Strings(ds.attributeKeys)
	return ds
}

// Columns returns the header order shared by all tabular adapters: the fixed
// choice columns followed by a_-prefixed then b_-prefixed attribute columns,
// attribute keys sorted for stable output.
func (ds *Dataset) Columns() []string {
	columns := []string{"session_id", "round_number", "choice", "chose_a", "response_time_ms", "timestamp"}
	for _, key := range ds.attributeKeys {
		columns = append(columns, "a_"+key)
	}
	for _, key := range ds.attributeKeys {
		columns = append(columns, "b_"+key)
	}
	return columns
}

// Values renders one row in Columns order. String slots missing from a
// card's attribute map come out empty.
func (ds *Dataset) Values(row Row) []any {
	values := []any{row.SessionId, row.RoundNumber, row.Choice, row.ChoseA, row.ResponseTimeMs, row.Timestamp}
	for _, key := range ds.attributeKeys {
		values = append(values, row.AttributesA[key])
	}
	for _, key := range ds.attributeKeys {
		values = append(values, row.AttributesB[key])
	}
	return values
}
