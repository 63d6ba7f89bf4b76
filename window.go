package gopaginator

import (
	"iter"
	"math"
	"slices"

	"github.com/samber/lo"
)

// RelevantPages returns the ascending, deduplicated page numbers a navigation
// control has to render so that, together with gap markers, every page stays
// reachable. "Relevant" pages are:
//   - pages inside the left outer window plus one for the gap after it;
//   - pages inside the inner window plus one on each side for the gaps around it;
//   - pages inside the right outer window plus one for the gap before it.
//
// Region bounds saturate instead of wrapping around, and every region is
// clipped to [1, TotalPages] before it is materialized, so the cost depends on
// the window sizes only, never on TotalPages.
func RelevantPages(p Parameters) []int {
	total := p.TotalPages
	window := floorSize(p.Window)
	left := floorSize(p.Left)
	right := floorSize(p.Right)

	leftWindowPlusOne := pageRange(1, addSat(left, 1), total)
	insideWindowPlusEachSides := pageRange(
		addSat(addSat(p.CurrentPage, -window), -1),
		addSat(addSat(p.CurrentPage, window), 1),
		total,
	)
	rightWindowPlusOne := pageRange(addSat(total, -right), total, total)

	pages := make([]int, 0, len(leftWindowPlusOne)+len(insideWindowPlusEachSides)+len(rightWindowPlusOne))
	pages = append(pages, leftWindowPlusOne...)
	pages = append(pages, insideWindowPlusEachSides...)
	pages = append(pages, rightWindowPlusOne...)

	pages = lo.Uniq(pages)
	slices.Sort(pages)

	return pages
}

// floorSize raises sizes below -2 to -2. Every such size yields an empty
// region, and the floor keeps the size safe to negate.
func floorSize(size int) int {
	return max(size, -2)
}

// addSat adds b to a, saturating at the int bounds instead of wrapping.
func addSat(a, b int) int {
	s := a + b
	switch {
	case b > 0 && s < a:
		return math.MaxInt
	case b < 0 && s > a:
		return math.MinInt
	}

	return s
}

// pageRange returns the integers from..to intersected with [1, total].
func pageRange(from, to, total int) []int {
	from = max(from, 1)
	to = min(to, total)
	if to < from {
		return nil
	}

	return lo.RangeFrom(from, to-from+1)
}

// EachRelevantPage yields a PageRef for every relevant page. The sequence is
// derived from p on every iteration, so it can be ranged over any number of
// times, and stops as soon as the consumer breaks out.
func EachRelevantPage(p Parameters) iter.Seq[PageRef] {
	return func(yield func(PageRef) bool) {
		for _, number := range RelevantPages(p) {
			if !yield(NewPageRef(p, number)) {
				return
			}
		}
	}
}

// EachPage is an alias of EachRelevantPage.
func EachPage(p Parameters) iter.Seq[PageRef] {
	return EachRelevantPage(p)
}

// EventKind tells a page event from a gap event.
type EventKind uint8

const (
	EventPage EventKind = iota + 1
	EventGap
)

func (k EventKind) String() string {
	switch k {
	case EventPage:
		return "page"
	case EventGap:
		return "gap"
	default:
		return "unknown"
	}
}

// Event is a single element of the render sequence. Page is the zero value
// for gap events.
type Event struct {
	Kind EventKind
	Page PageRef
}

func (e Event) IsGap() bool {
	return e.Kind == EventGap
}

// Events yields the relevant pages in ascending order with one gap event
// between every two pages that are not consecutive. The sequence never starts
// or ends with a gap and never contains two gaps in a row.
func Events(p Parameters) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		previous := 0
		for _, number := range RelevantPages(p) {
			if previous != 0 && number-previous > 1 {
				if !yield(Event{Kind: EventGap}) {
					return
				}
			}

			if !yield(Event{Kind: EventPage, Page: NewPageRef(p, number)}) {
				return
			}
			previous = number
		}
	}
}

// Fold walks seq and passes each event to fn along with whether the event
// emitted right before it was a gap.
func Fold(seq iter.Seq[Event], fn func(ev Event, wasGap bool)) {
	wasGap := false
	for ev := range seq {
		fn(ev, wasGap)
		wasGap = ev.IsGap()
	}
}
