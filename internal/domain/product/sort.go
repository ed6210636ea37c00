package product

// Sort selects the ordering of a product listing. The zero value leaves
// rows in the order the store returns them.
type Sort string

const (
	SortNone      Sort = ""
	SortPriceAsc  Sort = "price-asc"
	SortPriceDesc Sort = "price-desc"
	SortNameAsc   Sort = "name-asc"
	SortNameDesc  Sort = "name-desc"
)

// ParseSort maps a query value to a Sort. Unrecognized values yield SortNone.
func ParseSort(v string) Sort {
	switch s := Sort(v); s {
	case SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return s
	default:
		return SortNone
	}
}
