package tripleidx

import (
	"errors"

	"github.com/hupe1980/tripleidx/hashset"
)

var (
	// ErrInvalidTriple is returned when a triple with a zero-valued node
	// is offered to the graph.
	ErrInvalidTriple = errors.New("triple has a zero-valued node")

	// ErrConcurrentModification is the hashset traversal error, re-exported
	// so callers can match it without importing hashset.
	ErrConcurrentModification = hashset.ErrConcurrentModification
)
