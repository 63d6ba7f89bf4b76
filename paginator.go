package gopaginator

import "iter"

// Paginator binds resolved Parameters to the window computations. It is a
// plain value: copies are independent and safe for concurrent use.
type Paginator struct {
	params Parameters
}

// NewPaginator returns a Paginator over params. params are used as is, resolve
// them with Config.Resolve first.
func NewPaginator(params Parameters) Paginator {
	return Paginator{params: params}
}

func (p Paginator) Parameters() Parameters {
	return p.params
}

// CurrentPage returns the ref of the page being viewed.
func (p Paginator) CurrentPage() PageRef {
	return NewPageRef(p.params, p.params.CurrentPage)
}

// ShouldRender reports whether there is anything to navigate, i.e. more than
// one page.
func (p Paginator) ShouldRender() bool {
	return p.params.TotalPages > 1
}

func (p Paginator) RelevantPages() []int {
	return RelevantPages(p.params)
}

func (p Paginator) EachPage() iter.Seq[PageRef] {
	return EachRelevantPage(p.params)
}

func (p Paginator) Events() iter.Seq[Event] {
	return Events(p.params)
}

func (p Paginator) Tags(opts TagOptions) iter.Seq[Tag] {
	return Tags(p.params, opts)
}
