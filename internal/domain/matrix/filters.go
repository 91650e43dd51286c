package matrix

// Filter names one of the matrix view filters.
type Filter string

const (
	FilterRequiredOnly Filter = "requiredOnly"
	FilterAutoOnly     Filter = "autoOnly"
	FilterDiffOnly     Filter = "diffOnly"
)

// Filters is the set of active view filters. Active filters combine with AND.
type Filters struct {
	RequiredOnly bool `json:"required_only"`
	AutoOnly     bool `json:"auto_only"`
	DiffOnly     bool `json:"diff_only"`
}

// match applies the filters to one item. An item "differs" when it is not on every option;
// an item on no option at all therefore differs too, as long as the quote has options.
func (f Filters) match(it *item, optionCount int) bool {
	if f.RequiredOnly && !it.required {
		return false
	}
	if f.AutoOnly && !it.auto {
		return false
	}
	if f.DiffOnly && len(it.assigned) == optionCount {
		return false
	}
	return true
}
