// Package pagination provides the shared page container and size clamping
// used by the listing endpoints.
package pagination

// Page holds one page of results along with the total matching count.
type Page[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Size  int   `json:"size"`
}

// ClampSize normalizes a requested page size: an unset size (zero or below)
// falls back to def, and anything above max is clamped to max.
func ClampSize(size, def, max int) int {
	if size <= 0 {
		size = def
	}
	if size > max {
		size = max
	}
	return size
}

// Offset computes the number of documents to skip for a 1-based page number.
func Offset(page, size int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * size
}
