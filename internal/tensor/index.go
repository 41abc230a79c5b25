package tensor

import (
	"fmt"
	"sync/atomic"
)

// nextIndexID hands out process-unique index identities.
var nextIndexID atomic.Uint64

// Index is a named axis with a fixed extent.
//
// Indices are compared by identity: two indices built by separate calls are
// different axes even when their names and extents agree. Tensors hold *Index
// handles, and the contraction engine matches axes across operands by pointer.
type Index struct {
	id     uint64
	name   string
	extent int
}

// WithValue creates a fresh index ranging over [0, extent).
//
// Example:
//
//	a, _ := tensor.WithValue(4)
func WithValue(extent int) (*Index, error) {
	return NewIndex("", extent)
}

// NewIndex creates a fresh index with a display name.
// An empty name defaults to "i<id>".
func NewIndex(name string, extent int) (*Index, error) {
	if extent <= 0 {
		return nil, fmt.Errorf("%w: %d (must be > 0)", ErrInvalidExtent, extent)
	}
	id := nextIndexID.Add(1)
	if name == "" {
		name = fmt.Sprintf("i%d", id)
	}
	return &Index{id: id, name: name, extent: extent}, nil
}

// Indices creates one fresh index per name, all sharing the same extent.
//
// Example:
//
//	ic, _ := tensor.Indices(2, "i", "c") // two distinct axes of extent 2
func Indices(extent int, names ...string) ([]*Index, error) {
	out := make([]*Index, len(names))
	for k, name := range names {
		ix, err := NewIndex(name, extent)
		if err != nil {
			return nil, err
		}
		out[k] = ix
	}
	return out, nil
}

// ID returns the process-unique identity of the index.
func (ix *Index) ID() uint64 {
	return ix.id
}

// Name returns the display name.
func (ix *Index) Name() string {
	return ix.name
}

// Extent returns the number of values the index ranges over.
func (ix *Index) Extent() int {
	return ix.extent
}

// String renders the index as name:extent.
func (ix *Index) String() string {
	return fmt.Sprintf("%s:%d", ix.name, ix.extent)
}

// validateIndices checks that every index is non-nil and appears once.
func validateIndices(indices []*Index) error {
	seen := make(map[*Index]struct{}, len(indices))
	for k, ix := range indices {
		if ix == nil {
			return fmt.Errorf("%w: nil index at position %d", ErrInvalidExtent, k)
		}
		if _, dup := seen[ix]; dup {
			return fmt.Errorf("%w: %s at position %d", ErrDuplicateIndex, ix, k)
		}
		seen[ix] = struct{}{}
	}
	return nil
}
