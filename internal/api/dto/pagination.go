package dto

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page captures normalized pagination parameters.
type Page struct {
	Page     int
	PageSize int
}

// NormalizePage clamps raw query values into valid pagination bounds.
func NormalizePage(page, pageSize int) Page {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Page{Page: page, PageSize: pageSize}
}

// Offset converts the page number into a row offset.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}
