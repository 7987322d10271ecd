package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

type rScriptEncoder struct{}

func (e *rScriptEncoder) ContentType() string   { return "text/plain" }
func (e *rScriptEncoder) FileExtension() string { return "R" }

// Encode emits a self-contained R script defining the dataset as a
// data.frame literal, one `c(...)` vector per column.
func (e *rScriptEncoder) Encode(w io.Writer, ds *Dataset) error {
	columns := ds.Columns()
	vectors := make([][]string, len(columns))
	for i := range vectors {
		vectors[i] = make([]string, 0, len(ds.Rows))
	}
	for _, row := range ds.Rows {
		for i, v := range ds.Values(row) {
			vectors[i] = append(vectors[i], rLiteral(v))
		}
	}

	var b strings.Builder
	b.WriteString("# Conjoint survey export\n")
	b.WriteString("conjoint_data <- data.frame(\n")
	for i, column := range columns {
		b.WriteString("  ")
		b.WriteString(column)
		b.WriteString(" = c(")
		b.WriteString(strings.Join(vectors[i], ", "))
		b.WriteString(")")
		if i < len(columns)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(", stringsAsFactors = FALSE)\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func rLiteral(v any) string {
	switch value := v.(type) {
	case int:
		return strconv.Itoa(value)
	case string:
		return strconv.Quote(value)
	default:
		return strconv.Quote(fmt.Sprint(value))
	}
}
