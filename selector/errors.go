package selector

import "errors"

// Errors returned when an append would break the compound selector
// invariants. Message text is part of the public contract, do not edit.
var (
	// ErrDuplicateSingularPart is returned when a singular kind (element,
	// id, pseudo-element) is appended a second time.
	ErrDuplicateSingularPart = errors.New("Element, id and pseudo-element should not occur more than one time inside the selector")

	// ErrOutOfOrderPart is returned when an appended kind precedes, in
	// canonical CSS order, a kind that was already appended.
	ErrOutOfOrderPart = errors.New("Selector parts should be arranged in the following order: element, id, class, attribute, pseudo-class, pseudo-element")
)
