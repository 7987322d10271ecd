package export

import (
	"encoding/json"
	"io"
)

type jsonEncoder struct{}

func (e *jsonEncoder) ContentType() string   { return "application/json" }
func (e *jsonEncoder) FileExtension() string { return "json" }

// Encode emits an array of flat objects keyed by column name, the same shape
// the tabular formats use, so downstream tooling can switch formats freely.
func (e *jsonEncoder) Encode(w io.Writer, ds *Dataset) error {
	columns := ds.Columns()
	records := make([]map[string]any, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		values := ds.Values(row)
		record := make(map[string]any, len(columns))
		for i, column := range columns {
			record[column] = values[i]
		}
		records = append(records, record)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}
