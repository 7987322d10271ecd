package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

type csvEncoder struct{}

func (e *csvEncoder) ContentType() string   { return "text/csv" }
func (e *csvEncoder) FileExtension() string { return "csv" }

func (e *csvEncoder) Encode(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ds.Columns()); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		values := ds.Values(row)
		record := make([]string, len(values))
		for i, v := range values {
			record[i] = fmt.Sprint(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
