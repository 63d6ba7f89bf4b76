package gopaginator

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/samber/lo"
	"gorm.io/gorm"
)

// RawScope is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawScope `json:",inline"`
//	}
type RawScope struct {
	// Page - 1-based page number. Non-positive values mean the first page.
	Page int `json:"page"`
	// PerPage - number of records per page, normalized with NormalizeLimit.
	PerPage int `json:"perPage"`
}

// Decode converts RawScope into a normalized *Scope.
func (r RawScope) Decode() *Scope {
	return NewScope().WithPage(r.Page).WithPerPage(r.PerPage)
}

// Scope selects one page of a GORM dataset with LIMIT/OFFSET and knows how to
// derive paginator Parameters from the size of that dataset.
type Scope struct {
	page    int
	perPage int
	logger  *slog.Logger
}

func NewScope() *Scope {
	return &Scope{
		page:    1,
		perPage: DefaultLimit,
	}
}

// WithPage sets the 1-based page number. Values below 1 select the first page.
func (s *Scope) WithPage(page int) *Scope {
	if s == nil {
		s = NewScope()
	}

	s.page = NormalizePage(page)

	return s
}

// WithPerPage sets the page size. NormalizeLimit is applied.
func (s *Scope) WithPerPage(perPage int) *Scope {
	if s == nil {
		s = NewScope()
	}

	s.perPage = NormalizeLimit(perPage)

	return s
}

// WithLogger sets a logger for debug records. A nil logger disables them.
func (s *Scope) WithLogger(logger *slog.Logger) *Scope {
	if s == nil {
		s = NewScope()
	}

	s.logger = logger

	return s
}

// GetPage returns the page number stored in Scope.
func (s *Scope) GetPage() int {
	if s == nil {
		return 1
	}

	return s.page
}

// GetPerPage returns the page size stored in Scope.
func (s *Scope) GetPerPage() int {
	if s == nil {
		return DefaultLimit
	}

	return s.perPage
}

// Offset returns the number of records preceding the page. It saturates at
// math.MaxInt for pages too far out to address.
func (s *Scope) Offset() int {
	page, perPage := s.GetPage(), s.GetPerPage()
	if perPage > 0 && page-1 > math.MaxInt/perPage {
		return math.MaxInt
	}

	return (page - 1) * perPage
}

// Paginate applies LIMIT/OFFSET for the page to a gorm query.
func (s *Scope) Paginate(db *gorm.DB) *gorm.DB {
	return db.Offset(s.Offset()).Limit(s.GetPerPage())
}

// Count returns the number of records in the dataset. The query passed in is
// not modified.
func (s *Scope) Count(db *gorm.DB) (int64, error) {
	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("cannot count records: %w", err)
	}

	s.debug(db.Statement.Context, "counted records", slog.Int64("total", total))

	return total, nil
}

// Parameters counts the dataset and resolves paginator Parameters for the
// scope's page.
func (s *Scope) Parameters(db *gorm.DB, cfg Config, opts Options) (Parameters, error) {
	params, _, err := s.parameters(db, cfg, opts)
	return params, err
}

func (s *Scope) parameters(db *gorm.DB, cfg Config, opts Options) (Parameters, int64, error) {
	total, err := s.Count(db)
	if err != nil {
		return Parameters{}, 0, err
	}

	params, err := cfg.Resolve(s.GetPage(), TotalPages(total, s.GetPerPage()), opts)
	if err != nil {
		return Parameters{}, 0, err
	}

	s.debug(db.Statement.Context, "resolved paginator parameters",
		slog.Int("current_page", params.CurrentPage),
		slog.Int("total_pages", params.TotalPages),
		slog.Int("window", params.Window),
		slog.Int("left", params.Left),
		slog.Int("right", params.Right),
	)

	return params, total, nil
}

func (s *Scope) debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	if s == nil || s.logger == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "paginator: "+msg, attrs...)
}

// PageResult is a page of records together with the paginator that navigates
// the whole dataset.
type PageResult[T any] struct {
	// Items result elements.
	Items []T
	// Total number of elements.
	Total int64
	// AppliedLimit effective page size used for the query.
	AppliedLimit int
	// Paginator navigation over all pages of the dataset.
	Paginator Paginator
}

// FetchPage counts the dataset, loads the scope's page into a slice of T and
// returns both. A page past the last one yields no items and no select query.
func FetchPage[T any](db *gorm.DB, scope *Scope, cfg Config, opts Options) (*PageResult[T], error) {
	if scope == nil {
		scope = NewScope()
	}

	params, total, err := scope.parameters(db, cfg, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	items := make([]T, 0)
	if params.CurrentPage <= params.TotalPages {
		if err = scope.Paginate(db).Find(&items).Error; err != nil {
			return nil, fmt.Errorf("cannot fetch page %d: %w", scope.GetPage(), err)
		}
	}

	return &PageResult[T]{
		Items:        items,
		Total:        total,
		AppliedLimit: scope.GetPerPage(),
		Paginator:    NewPaginator(params),
	}, nil
}

// HasNext reports whether a page follows the fetched one.
func (r *PageResult[T]) HasNext() bool {
	if r == nil {
		return false
	}

	current := r.Paginator.CurrentPage()

	return lo.Ternary(current.IsOutOfRange(), false, !current.IsLast())
}
