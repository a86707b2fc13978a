package entity

const (
	DefaultPage    = 1
	DefaultPerPage = 5
	MaxPerPage     = 100
)

// Page describes a window over an owner's bookmarks.
type Page struct {
	Page     int  // Page is the 1-based number of the current page.
	PerPage  int  // PerPage is the window size.
	Pages    int  // Pages is the total number of pages, 0 when there are no items.
	Total    int  // Total is the number of items across all pages.
	PrevPage *int // PrevPage is the previous page number, nil on the first page.
	NextPage *int // NextPage is the next page number, nil on the last page.
	HasPrev  bool
	HasNext  bool
}

// NewPage computes pagination metadata for the given window and item count.
func NewPage(page, perPage, total int) Page {
	p := Page{
		Page:    page,
		PerPage: perPage,
		Total:   total,
	}

	if perPage > 0 {
		p.Pages = (total + perPage - 1) / perPage
	}

	p.HasPrev = page > 1
	p.HasNext = page < p.Pages

	if p.HasPrev {
		prev := page - 1
		p.PrevPage = &prev
	}
	if p.HasNext {
		next := page + 1
		p.NextPage = &next
	}

	return p
}

// Offset returns the number of items preceding the page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PerPage
}
