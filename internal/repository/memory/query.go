package memory

import (
	"conjoint-survey-be/internal/repository/specification"
)

// queryOptions extracts ordering and pagination from a spec list; the
// remaining specs act as filters interpreted by each repository.
type queryOptions struct {
	orderField string
	orderDesc  bool
	limit      int
	offset     int
}

func parseOptions(specs []specification.Specification) queryOptions {
	opts := queryOptions{limit: -1}
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.OrderBy:
			opts.orderField = s.Field
			opts.orderDesc = s.Desc
		case specification.Pagination:
			opts.limit = s.Limit
			opts.offset = s.Offset
		}
	}
	return opts
}

func paginate[T any](items []T, opts queryOptions) []T {
	if opts.offset > 0 {
		if opts.offset >= len(items) {
			return nil
		}
		items = items[opts.offset:]
	}
	if opts.limit >= 0 && opts.limit < len(items) {
		items = items[:opts.limit]
	}
	return items
}
