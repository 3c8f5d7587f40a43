package ops

// Pagination limits
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Pagination contains pagination metadata for list operations.
type Pagination struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
	Total   int  `json:"total"`
}

// paginate slices items by offset and limit. A non-positive limit returns
// every item from offset on.
func paginate[T any](items []T, limit, offset int) ([]T, Pagination) {
	offset = max(offset, 0)
	limit = min(limit, MaxListLimit)
	p := Pagination{Limit: limit, Offset: offset, Total: len(items)}

	if offset >= len(items) {
		return []T{}, p
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	p.HasMore = end < len(items)
	return items[offset:end], p
}
