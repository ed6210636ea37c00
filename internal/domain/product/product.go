package product

import "time"

type Product struct {
	ID          int64
	Name        string
	Price       float64
	Image       string
	Category    string
	Description string
	CreatedAt   time.Time
}

// AllCategories is the category value that disables category filtering.
const AllCategories = "all"

type ListFilter struct {
	Category string
	Sort     Sort
}

// HasCategory reports whether the filter restricts results to one category.
func (f ListFilter) HasCategory() bool {
	return f.Category != "" && f.Category != AllCategories
}
