package gopaginator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameters is wrapped by Parameters.Validate and Config.Resolve.
	ErrInvalidParameters = errors.New("invalid pagination parameters")
	// ErrInvalidConfig is returned when a Config fails validation.
	ErrInvalidConfig = errors.New("invalid paginator config")
	// ErrUnknownOption is returned for option keys the paginator does not
	// recognize. The message suggests the closest known key.
	ErrUnknownOption = errors.New("unknown paginator option")
)

// Parameters is the fully resolved input of the paginator. It is populated once
// by the configuration layer (see Config.Resolve) and never defaulted or
// mutated by the window computations.
type Parameters struct {
	// CurrentPage is the page being viewed, 1-based. It may exceed TotalPages.
	CurrentPage int `json:"currentPage"`
	// TotalPages is the number of pages. Zero means an empty collection.
	TotalPages int `json:"totalPages"`
	// Window is the inner window: pages shown on each side of CurrentPage.
	Window int `json:"window"`
	// Left is the number of pages always shown at the start.
	Left int `json:"left"`
	// Right is the number of pages always shown at the end.
	Right int `json:"right"`
}

// Validate reports negative sizes or a non-positive current page. The window
// computations accept any integers, so this is meant for the configuration
// layer only.
func (p Parameters) Validate() error {
	switch {
	case p.CurrentPage < 1:
		return fmt.Errorf("%w: current page %d is less than 1", ErrInvalidParameters, p.CurrentPage)
	case p.TotalPages < 0:
		return fmt.Errorf("%w: negative total pages %d", ErrInvalidParameters, p.TotalPages)
	case p.Window < 0:
		return fmt.Errorf("%w: negative window %d", ErrInvalidParameters, p.Window)
	case p.Left < 0:
		return fmt.Errorf("%w: negative left window %d", ErrInvalidParameters, p.Left)
	case p.Right < 0:
		return fmt.Errorf("%w: negative right window %d", ErrInvalidParameters, p.Right)
	}

	return nil
}
