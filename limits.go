package gopaginator

const (
	MaxLimit     = 100
	DefaultLimit = 10
)

// IsNormalizedLimitMax clamps a per-page limit into [1, maxLimit]. Non-positive
// limits become DefaultLimit. The boolean is false when the input was changed.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	} else if limit > maxLimit {
		return maxLimit, false
	}

	return limit, true
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// NormalizePage maps non-positive page numbers to the first page.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}

// TotalPages returns the number of pages needed for total items, perPage items
// each. A non-positive perPage or total yields zero.
func TotalPages(total int64, perPage int) int {
	if total <= 0 || perPage <= 0 {
		return 0
	}

	return int((total + int64(perPage) - 1) / int64(perPage))
}
