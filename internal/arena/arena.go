// Package arena provides slot storage for list nodes. Nodes are
// addressed by handles rather than pointers, so a list can refer to
// its neighbours without holding references into memory it does not
// own.
package arena

import "github.com/pkg/errors"

// ErrExhausted is returned by Alloc when the arena already holds as
// many live values as its limit allows.
var ErrExhausted = errors.New("arena exhausted")

// Handle identifies a slot in an [Arena]. Handles are 1-based so that
// the zero value, [Nil], refers to nothing.
type Handle int32

// Nil is the handle that refers to no slot.
const Nil Handle = 0

// Arena stores values of type T in reusable slots. A zero value Arena
// is empty, has no limit, and is ready to use.
type Arena[T any] struct {
	slots []slot[T]
	free  Handle
	live  int
	limit int
}

type slot[T any] struct {
	val  T
	next Handle
	used bool
}

// SetLimit sets the maximum number of live values. A limit of zero or
// less removes the limit. Lowering the limit below the current number
// of live values does not free anything, it only causes further
// allocations to fail.
func (a *Arena[T]) SetLimit(n int) {
	a.limit = max(n, 0)
}

// Limit returns the current limit, or 0 if there is none.
func (a *Arena[T]) Limit() int {
	return a.limit
}

// Len returns the number of live values.
func (a *Arena[T]) Len() int {
	return a.live
}

// Alloc stores v in a free slot and returns its handle. Slots released
// by Free are reused, most recent first, before the arena grows.
func (a *Arena[T]) Alloc(v T) (Handle, error) {
	if a.limit > 0 && a.live >= a.limit {
		return Nil, errors.Wrapf(ErrExhausted, "limit %d reached", a.limit)
	}

	h := a.free
	if h != Nil {
		s := &a.slots[h-1]
		a.free = s.next
		*s = slot[T]{val: v, used: true}
	} else {
		a.slots = append(a.slots, slot[T]{val: v, used: true})
		h = Handle(len(a.slots))
	}

	a.live++
	return h, nil
}

// Free releases the slot referred to by h. The handle, and any copy
// of it, must not be used afterwards.
func (a *Arena[T]) Free(h Handle) {
	s := a.slot(h)

	var zero T
	s.val = zero
	s.used = false
	s.next = a.free
	a.free = h
	a.live--
}

// Get returns a pointer to the value stored at h. The pointer is only
// valid until the next call to Alloc, which may move the slots.
func (a *Arena[T]) Get(h Handle) *T {
	return &a.slot(h).val
}

// Reset frees every slot at once and drops the backing storage. The
// limit is kept.
func (a *Arena[T]) Reset() {
	a.slots = nil
	a.free = Nil
	a.live = 0
}

func (a *Arena[T]) slot(h Handle) *slot[T] {
	if h <= Nil || int(h) > len(a.slots) {
		panic(errors.Errorf("arena: handle %d out of range", h))
	}

	s := &a.slots[h-1]
	if !s.used {
		panic(errors.Errorf("arena: handle %d is not allocated", h))
	}
	return s
}
