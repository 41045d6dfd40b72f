package linked

import (
	"iter"

	"github.com/pkg/errors"

	"deedles.dev/linked/internal/arena"
)

// Double is a doubly-linked list. Unlike [Single], it tracks both its
// head and its tail, so insertions and removals at either end are
// constant time and the list can be traversed in both directions.
type Double struct {
	nodes      arena.Arena[dnode]
	head, tail arena.Handle
	n          int
}

type dnode struct {
	val        int
	prev, next arena.Handle
}

// SetLimit sets the maximum number of elements the list may hold. An
// insert beyond the limit fails with [ErrAllocation]. A limit of zero
// or less removes the limit.
func (ls *Double) SetLimit(n int) {
	ls.nodes.SetLimit(n)
}

// Len returns the number of elements in the list.
func (ls *Double) Len() int {
	return ls.n
}

func (ls *Double) node(h arena.Handle) *dnode {
	return ls.nodes.Get(h)
}

// seek returns the handle of the node at index i, walking from
// whichever end of the list is closer.
func (ls *Double) seek(i int) arena.Handle {
	if i < ls.n/2 {
		cur := ls.head
		for range i {
			cur = ls.node(cur).next
		}
		return cur
	}

	cur := ls.tail
	for range ls.n - 1 - i {
		cur = ls.node(cur).prev
	}
	return cur
}

// InsertFront adds v as the new head of the list.
func (ls *Double) InsertFront(v int) error {
	h, err := ls.nodes.Alloc(dnode{val: v, next: ls.head})
	if err != nil {
		return allocErr(err, v)
	}

	if ls.head == arena.Nil {
		ls.tail = h
	} else {
		ls.node(ls.head).prev = h
	}
	ls.head = h
	ls.n++
	return nil
}

// InsertBack adds v as the new tail of the list.
func (ls *Double) InsertBack(v int) error {
	h, err := ls.nodes.Alloc(dnode{val: v, prev: ls.tail})
	if err != nil {
		return allocErr(err, v)
	}

	if ls.tail == arena.Nil {
		ls.head = h
	} else {
		ls.node(ls.tail).next = h
	}
	ls.tail = h
	ls.n++
	return nil
}

// InsertAt inserts v so that it ends up at index i. i may be anywhere
// from 0 to Len(), inclusive. Any other index fails with
// [ErrInvalidIndex].
func (ls *Double) InsertAt(i, v int) error {
	if i < 0 || i > ls.n {
		return indexErr("insert", i, ls.n)
	}
	switch i {
	case 0:
		return ls.InsertFront(v)
	case ls.n:
		return ls.InsertBack(v)
	}

	at := ls.seek(i)
	prev := ls.node(at).prev
	h, err := ls.nodes.Alloc(dnode{val: v, prev: prev, next: at})
	if err != nil {
		return allocErr(err, v)
	}

	ls.node(prev).next = h
	ls.node(at).prev = h
	ls.n++
	return nil
}

// DeleteFront removes the head of the list and returns its value.
func (ls *Double) DeleteFront() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "delete front")
	}
	return ls.unlink(ls.head), nil
}

// DeleteBack removes the tail of the list and returns its value.
func (ls *Double) DeleteBack() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "delete back")
	}
	return ls.unlink(ls.tail), nil
}

// DeleteAt removes the element at index i and returns its value. i
// must be less than Len().
func (ls *Double) DeleteAt(i int) (int, error) {
	if i < 0 || i >= ls.n {
		return 0, indexErr("delete", i, ls.n)
	}
	return ls.unlink(ls.seek(i)), nil
}

// unlink removes the node at h from the chain, frees it, and returns
// its value.
func (ls *Double) unlink(h arena.Handle) int {
	n := ls.node(h)
	v, prev, next := n.val, n.prev, n.next

	if prev == arena.Nil {
		ls.head = next
	} else {
		ls.node(prev).next = next
	}
	if next == arena.Nil {
		ls.tail = prev
	} else {
		ls.node(next).prev = prev
	}

	ls.nodes.Free(h)
	ls.n--
	return v
}

// Search returns the index of the first element equal to v, or
// [NotFound] if there is none.
func (ls *Double) Search(v int) int {
	var i int
	for e := range ls.All() {
		if e == v {
			return i
		}
		i++
	}
	return NotFound
}

// At returns the element at index i.
func (ls *Double) At(i int) (int, error) {
	if i < 0 || i >= ls.n {
		return 0, indexErr("get", i, ls.n)
	}
	return ls.node(ls.seek(i)).val, nil
}

// Front returns the first element of the list.
func (ls *Double) Front() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "front")
	}
	return ls.node(ls.head).val, nil
}

// Back returns the last element of the list.
func (ls *Double) Back() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "back")
	}
	return ls.node(ls.tail).val, nil
}

// Release frees every node of the list, head first, leaving the list
// empty. The list may be reused afterwards and keeps its limit.
func (ls *Double) Release() {
	cur := ls.head
	for cur != arena.Nil {
		next := ls.node(cur).next
		ls.nodes.Free(cur)
		cur = next
	}

	ls.nodes.Reset()
	ls.head = arena.Nil
	ls.tail = arena.Nil
	ls.n = 0
}

// All returns an iterator over the elements of the list from head to
// tail. The list must not be modified during iteration.
func (ls *Double) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		cur := ls.head
		for cur != arena.Nil {
			n := ls.node(cur)
			if !yield(n.val) {
				return
			}
			cur = n.next
		}
	}
}

// Backward returns an iterator over the elements of the list from
// tail to head, following only the backward links.
func (ls *Double) Backward() iter.Seq[int] {
	return func(yield func(int) bool) {
		cur := ls.tail
		for cur != arena.Nil {
			n := ls.node(cur)
			if !yield(n.val) {
				return
			}
			cur = n.prev
		}
	}
}

func (ls *Double) check() error {
	if (ls.head == arena.Nil) != (ls.tail == arena.Nil) || (ls.head == arena.Nil) != (ls.n == 0) {
		return errors.Errorf("head %d, tail %d, and length %d disagree", ls.head, ls.tail, ls.n)
	}
	if ls.n == 0 {
		return nil
	}

	if p := ls.node(ls.head).prev; p != arena.Nil {
		return errors.Errorf("head has previous node %d", p)
	}
	if n := ls.node(ls.tail).next; n != arena.Nil {
		return errors.Errorf("tail has next node %d", n)
	}

	var count int
	prev := arena.Nil
	cur := ls.head
	for cur != arena.Nil {
		if count >= ls.n {
			return errors.Errorf("chain is longer than length %d", ls.n)
		}
		n := ls.node(cur)
		if n.prev != prev {
			return errors.Errorf("node %d at index %d points back to %d, not %d", cur, count, n.prev, prev)
		}
		count++
		prev, cur = cur, n.next
	}

	if prev != ls.tail {
		return errors.Errorf("chain ends at %d but tail is %d", prev, ls.tail)
	}
	if count != ls.n {
		return errors.Errorf("chain has %d nodes but length is %d", count, ls.n)
	}
	if live := ls.nodes.Len(); live != ls.n {
		return errors.Errorf("%d live nodes but length is %d", live, ls.n)
	}
	return nil
}
