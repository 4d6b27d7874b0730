package query

// Page is one slice of a filtered sequence plus the totals callers need to
// render pagination controls.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	Limit      int `json:"limit"`
}

// Paginate returns the 1-based page of the given size, clipped to the
// sequence bounds. Out-of-range pages yield empty items, never an error.
func Paginate[T any](items []T, page, size int) Page[T] {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 1
	}

	total := len(items)
	totalPages := (total + size - 1) / size

	start := (page - 1) * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	out := make([]T, end-start)
	copy(out, items[start:end])

	return Page[T]{
		Items:      out,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		Limit:      size,
	}
}
