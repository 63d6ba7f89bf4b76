package gopaginator

import "iter"

// TagKind is the closed set of elements a paginator renders.
type TagKind uint8

const (
	TagFirstPage TagKind = iota + 1
	TagPrevPage
	TagPage
	TagGap
	TagNextPage
	TagLastPage
)

func (k TagKind) String() string {
	switch k {
	case TagFirstPage:
		return "first_page"
	case TagPrevPage:
		return "prev_page"
	case TagPage:
		return "page"
	case TagGap:
		return "gap"
	case TagNextPage:
		return "next_page"
	case TagLastPage:
		return "last_page"
	default:
		return "unknown"
	}
}

// IsLink reports whether the tag points at a page. Only gaps do not.
func (k TagKind) IsLink() bool {
	return k != TagGap && k != 0
}

// Tag is a single rendered element. Page is the link target: 1 for the first
// page tag, CurrentPage-1 for prev, CurrentPage+1 for next, TotalPages for
// last, and the zero value for gaps.
type Tag struct {
	Kind TagKind
	Page PageRef
}

// TagOptions tunes how hidden pages are rendered.
type TagOptions struct {
	// SingleGapAsPage renders a page that is the only one hidden between two
	// windows as a link instead of a gap marker.
	SingleGapAsPage bool
}

// Tags yields the full navigation sequence:
//
//	[first prev] page... gap page... [next last]
//
// first/prev are emitted unless the current page is the first one, next/last
// unless it is the last one (or beyond). A relevant page outside every window
// turns into a gap, collapsed with the gap emitted right before it.
func Tags(p Parameters, opts TagOptions) iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		current := NewPageRef(p, p.CurrentPage)
		if p.TotalPages < 1 {
			return
		}

		if current.Number() > 1 {
			if !yield(Tag{Kind: TagFirstPage, Page: NewPageRef(p, 1)}) {
				return
			}
			if !yield(Tag{Kind: TagPrevPage, Page: NewPageRef(p, current.Sub(1))}) {
				return
			}
		}

		wasTruncated := false
		for page := range EachRelevantPage(p) {
			var tag Tag
			switch {
			case page.IsDisplayed(), opts.SingleGapAsPage && page.IsSingleGap():
				tag = Tag{Kind: TagPage, Page: page}
			case !wasTruncated:
				tag = Tag{Kind: TagGap}
			default:
				continue
			}

			if !yield(tag) {
				return
			}
			wasTruncated = tag.Kind == TagGap
		}

		if !current.IsLast() && !current.IsOutOfRange() {
			if !yield(Tag{Kind: TagNextPage, Page: NewPageRef(p, current.Add(1))}) {
				return
			}
			if !yield(Tag{Kind: TagLastPage, Page: NewPageRef(p, p.TotalPages)}) {
				return
			}
		}
	}
}
