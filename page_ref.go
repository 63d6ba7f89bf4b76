package gopaginator

import (
	"cmp"
	"fmt"
	"strconv"
)

// PageRef wraps a page number together with the parameters it was produced
// for, and answers how that page relates to the current one.
//
// Equality, ordering and arithmetic only look at the number: two refs built
// over different parameters but with the same number compare equal.
type PageRef struct {
	params Parameters
	number int
}

// NewPageRef returns a ref to page number under params. The number is not
// checked against TotalPages.
func NewPageRef(params Parameters, number int) PageRef {
	return PageRef{
		params: params,
		number: number,
	}
}

// Number returns the page number.
func (r PageRef) Number() int {
	return r.number
}

// Parameters returns the parameters the ref was built for.
func (r PageRef) Parameters() Parameters {
	return r.params
}

// IsCurrent reports whether the page is the one being viewed.
func (r PageRef) IsCurrent() bool {
	return r.number == r.params.CurrentPage
}

// IsFirst reports whether the page is page 1.
func (r PageRef) IsFirst() bool {
	return r.number == 1
}

// IsLast reports whether the page is the last one. Never true for an empty
// collection.
func (r PageRef) IsLast() bool {
	return r.number == r.params.TotalPages
}

func (r PageRef) IsPrev() bool {
	return r.number == r.params.CurrentPage-1
}

func (r PageRef) IsNext() bool {
	return r.number == r.params.CurrentPage+1
}

// IsLeftOuter reports whether the page lies in the left outer window.
func (r PageRef) IsLeftOuter() bool {
	return r.number <= r.params.Left
}

// IsRightOuter reports whether the page lies in the right outer window.
func (r PageRef) IsRightOuter() bool {
	return r.params.TotalPages-r.number < r.params.Right
}

// IsInWindow reports whether the page lies in the inner window around the
// current page.
func (r PageRef) IsInWindow() bool {
	d := r.params.CurrentPage - r.number
	if d < 0 {
		d = -d
	}

	return d <= r.params.Window
}

// IsDisplayed reports whether the page belongs to one of the three windows and
// should therefore be rendered as a link rather than collapsed into a gap.
func (r PageRef) IsDisplayed() bool {
	return r.IsLeftOuter() || r.IsRightOuter() || r.IsInWindow()
}

// IsSingleGap reports whether the page is the only hidden page between the
// left outer window and the inner window, or between the inner window and the
// right outer window. Such a page can be shown directly instead of a gap.
func (r PageRef) IsSingleGap() bool {
	p := r.params

	return (r.number == p.CurrentPage-p.Window-1 && r.number == p.Left+1) ||
		(r.number == p.CurrentPage+p.Window+1 && r.number == p.TotalPages-p.Right)
}

// IsOutOfRange reports whether the page lies past the last page.
func (r PageRef) IsOutOfRange() bool {
	return r.number > r.params.TotalPages
}

// Rel returns the link relation to the current page: "next", "prev" or "".
func (r PageRef) Rel() string {
	switch {
	case r.IsNext():
		return "next"
	case r.IsPrev():
		return "prev"
	default:
		return ""
	}
}

// Add returns the page number plus n.
func (r PageRef) Add(n int) int {
	return r.number + n
}

// Sub returns the page number minus n.
func (r PageRef) Sub(n int) int {
	return r.number - n
}

// Compare returns -1, 0 or +1 comparing page numbers.
func (r PageRef) Compare(other PageRef) int {
	return cmp.Compare(r.number, other.number)
}

func (r PageRef) Equal(other PageRef) bool {
	return r.number == other.number
}

// String - implements fmt.Stringer.
func (r PageRef) String() string {
	return strconv.Itoa(r.number)
}

// ComparePageRefs orders refs by page number. Suitable for slices.SortFunc.
func ComparePageRefs(a, b PageRef) int {
	return a.Compare(b)
}

var _ fmt.Stringer = PageRef{}
