// Package gopaginator decides which page numbers a page-number navigation
// control should show.
//
// Overview
//
// Given a current page, a total page count and three window sizes, the
// package selects the "relevant" pages: the left outer window, the inner
// window around the current page and the right outer window, each widened by
// one page so the caller can tell where a gap marker belongs. Everything else
// is left implicit and rendered as a gap.
//
// Key concepts
//   - Parameters: resolved input (current page, total pages, window, left, right).
//   - PageRef: a page number with predicates relating it to the current page.
//   - RelevantPages / EachRelevantPage: the ascending page selection.
//   - Events: page and gap events; Tags: the full first/prev/page/gap/next/last
//     sequence.
//   - Config / Options: window defaults and per-call overrides.
//   - Scope / FetchPage: sourcing the current page and total pages from a GORM
//     dataset with LIMIT/OFFSET.
//
// Link targets and markup are left to the caller.
package gopaginator
