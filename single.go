package linked

import (
	"iter"

	"github.com/pkg/errors"

	"deedles.dev/linked/internal/arena"
)

// Single is a singly-linked list. It only tracks its head, so
// operations at the front are constant time while operations at the
// back or at an index walk the list. For constant time access to both
// ends, see [Double].
type Single struct {
	nodes arena.Arena[snode]
	head  arena.Handle
	n     int
}

type snode struct {
	val  int
	next arena.Handle
}

// SetLimit sets the maximum number of elements the list may hold. An
// insert beyond the limit fails with [ErrAllocation]. A limit of zero
// or less removes the limit.
func (ls *Single) SetLimit(n int) {
	ls.nodes.SetLimit(n)
}

// Len returns the number of elements in the list.
func (ls *Single) Len() int {
	return ls.n
}

func (ls *Single) node(h arena.Handle) *snode {
	return ls.nodes.Get(h)
}

// walk returns the handle of the node i steps past the head. i must be
// less than the length of the list.
func (ls *Single) walk(i int) arena.Handle {
	cur := ls.head
	for range i {
		cur = ls.node(cur).next
	}
	return cur
}

// InsertFront adds v as the new head of the list.
func (ls *Single) InsertFront(v int) error {
	h, err := ls.nodes.Alloc(snode{val: v, next: ls.head})
	if err != nil {
		return allocErr(err, v)
	}

	ls.head = h
	ls.n++
	return nil
}

// InsertBack adds v after the last element of the list. This walks
// the entire list.
func (ls *Single) InsertBack(v int) error {
	h, err := ls.nodes.Alloc(snode{val: v})
	if err != nil {
		return allocErr(err, v)
	}

	if ls.head == arena.Nil {
		ls.head = h
	} else {
		ls.node(ls.walk(ls.n - 1)).next = h
	}
	ls.n++
	return nil
}

// InsertAt inserts v so that it ends up at index i. i may be anywhere
// from 0 to Len(), inclusive, with Len() appending to the list. Any
// other index fails with [ErrInvalidIndex].
func (ls *Single) InsertAt(i, v int) error {
	if i < 0 || i > ls.n {
		return indexErr("insert", i, ls.n)
	}
	if i == 0 {
		return ls.InsertFront(v)
	}

	prev := ls.walk(i - 1)
	h, err := ls.nodes.Alloc(snode{val: v, next: ls.node(prev).next})
	if err != nil {
		return allocErr(err, v)
	}

	ls.node(prev).next = h
	ls.n++
	return nil
}

// DeleteFront removes the head of the list and returns its value.
func (ls *Single) DeleteFront() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "delete front")
	}

	h := ls.head
	n := ls.node(h)
	v := n.val
	ls.head = n.next
	ls.nodes.Free(h)
	ls.n--
	return v, nil
}

// DeleteBack removes the last element of the list and returns its
// value. This walks the entire list.
func (ls *Single) DeleteBack() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "delete back")
	}
	if ls.n == 1 {
		return ls.DeleteFront()
	}

	prev := ls.node(ls.walk(ls.n - 2))
	last := prev.next
	v := ls.node(last).val
	prev.next = arena.Nil
	ls.nodes.Free(last)
	ls.n--
	return v, nil
}

// DeleteAt removes the element at index i and returns its value. i
// must be less than Len().
func (ls *Single) DeleteAt(i int) (int, error) {
	if i < 0 || i >= ls.n {
		return 0, indexErr("delete", i, ls.n)
	}
	if i == 0 {
		return ls.DeleteFront()
	}

	prev := ls.node(ls.walk(i - 1))
	victim := prev.next
	n := ls.node(victim)
	v := n.val
	prev.next = n.next
	ls.nodes.Free(victim)
	ls.n--
	return v, nil
}

// Search returns the index of the first element equal to v, or
// [NotFound] if there is none.
func (ls *Single) Search(v int) int {
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
func (ls *Single) At(i int) (int, error) {
	if i < 0 || i >= ls.n {
		return 0, indexErr("get", i, ls.n)
	}
	return ls.node(ls.walk(i)).val, nil
}

// Front returns the first element of the list.
func (ls *Single) Front() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "front")
	}
	return ls.node(ls.head).val, nil
}

// Back returns the last element of the list. This walks the entire
// list.
func (ls *Single) Back() (int, error) {
	if ls.n == 0 {
		return 0, errors.Wrap(ErrEmpty, "back")
	}
	return ls.node(ls.walk(ls.n - 1)).val, nil
}

// Release frees every node of the list, head first, leaving the list
// empty. The list may be reused afterwards and keeps its limit.
func (ls *Single) Release() {
	cur := ls.head
	for cur != arena.Nil {
		next := ls.node(cur).next
		ls.nodes.Free(cur)
		cur = next
	}

	ls.nodes.Reset()
	ls.head = arena.Nil
	ls.n = 0
}

// All returns an iterator over the elements of the list from head to
// tail. The list must not be modified during iteration.
func (ls *Single) All() iter.Seq[int] {
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

func (ls *Single) check() error {
	var count int
	cur := ls.head
	for cur != arena.Nil {
		if count >= ls.n {
			return errors.Errorf("chain is longer than length %d", ls.n)
		}
		count++
		cur = ls.node(cur).next
	}

	if count != ls.n {
		return errors.Errorf("chain has %d nodes but length is %d", count, ls.n)
	}
	if live := ls.nodes.Len(); live != ls.n {
		return errors.Errorf("%d live nodes but length is %d", live, ls.n)
	}
	return nil
}
