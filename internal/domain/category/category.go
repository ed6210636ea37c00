package category

// Category is a catalog section. Count is a display figure fixed at seed
// time; it is not derived from products.
type Category struct {
	ID    int64
	Name  string
	Count int64
}
