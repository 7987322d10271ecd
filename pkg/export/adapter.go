package export

import (
	"io"

	"conjoint-survey-be/internal/pkg/apperrors"
)

const (
	FormatCSV     = "csv"
	FormatJSON    = "json"
	FormatRScript = "r"
	FormatXLSX    = "xlsx"
)

// Encoder writes a flattened dataset in one delivery format.
type Encoder interface {
	// Encode writes the dataset to w.
	Encode(w io.Writer, ds *Dataset) error
	// ContentType is the MIME type the HTTP layer should serve.
	ContentType() string
	// FileExtension is the suggested download extension, without the dot.
	FileExtension() string
}

// NewEncoder builds the encoder for a format name. Unknown formats are a
// validation error so the HTTP layer reports them as bad requests.
func NewEncoder(format string) (Encoder, error) {
	switch format {
	case FormatCSV, "":
		return &csvEncoder{}, nil
	case FormatJSON:
		return &jsonEncoder{}, nil
	case FormatRScript:
		return &rScriptEncoder{}, nil
	case FormatXLSX:
		return &xlsxEncoder{}, nil
	default:
		return nil, apperrors.Validation("unsupported export format: %s", format)
	}
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{FormatCSV, FormatJSON, FormatRScript, FormatXLSX}
}
