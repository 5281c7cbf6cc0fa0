// Package nec provides named element collections:
// list-like containers whose elements are addressable both by position
// and by an optional name.
//
// Two variants share the same shape, an ordered element list plus a
// name index, and differ only in their naming policy.
// Unique rejects a second element under an already taken name,
// while Duplicate accepts it and returns every match on lookup,
// in insertion order.
//
// The zero value of both variants is an empty, ready to use collection.
// The collections are not safe for concurrent use;
// guard them externally if you share them between goroutines.
package nec

import (
	"iter"

	"go.llib.dev/frameless/pkg/errorkit"
	"go.llib.dev/frameless/pkg/mapkit"
	"go.llib.dev/frameless/pkg/slicekit"
)

// ErrDuplicateName is returned by Unique's push operations
// when the given name already belongs to a stored element.
// The collection is left unchanged when this error is returned.
const ErrDuplicateName errorkit.Error = "nec: duplicate element name"

// Nameable is an optional capability an element type may implement
// to supply its own name on push.
// The name is queried once, at insertion time, and used as the index key
// for the element's whole lifetime; later changes to the value's own name
// are not reflected in the collection's index.
type Nameable interface {
	Name() string
}

func nameOf[T any](v T) (string, bool) {
	if n, ok := any(v).(Nameable); ok {
		return n.Name(), true
	}
	return "", false
}

type entry[T any] struct {
	value T
	name  string
	named bool
}

// collection is the shared core of Unique and Duplicate:
// the ordered element storage plus the name index pointing back into it.
//
// The index holds positions, so any operation that shifts elements
// must repair every affected index entry before returning.
type collection[T any] struct {
	entries []entry[T]
	index   map[string][]int
}

func (c *collection[T]) push(e entry[T]) int {
	position := len(c.entries)
	c.entries = append(c.entries, e)
	if e.named {
		if c.index == nil {
			c.index = make(map[string][]int)
		}
		c.index[e.name] = append(c.index[e.name], position)
	}
	return position
}

// Lookup returns the element stored at the given position.
// Probing a position that was never assigned is a normal outcome,
// reported as (zero value, false).
func (c *collection[T]) Lookup(position int) (T, bool) {
	if position < 0 || len(c.entries) <= position {
		var zero T
		return zero, false
	}
	return c.entries[position].value, true
}

// Set replaces the value stored at the given position,
// and reports whether the position was valid.
// The name recorded at push time stays as is,
// even when the new value implements Nameable.
func (c *collection[T]) Set(position int, v T) bool {
	if position < 0 || len(c.entries) <= position {
		return false
	}
	c.entries[position].value = v
	return true
}

// NameOf returns the name under which the element at the given position
// was stored. Unnamed elements and out of range positions report ("", false).
func (c *collection[T]) NameOf(position int) (string, bool) {
	if position < 0 || len(c.entries) <= position {
		return "", false
	}
	e := c.entries[position]
	return e.name, e.named
}

// ContainsName reports whether at least one stored element
// has the given name.
func (c *collection[T]) ContainsName(name string) bool {
	_, ok := c.index[name]
	return ok
}

// Names returns the distinct names present in the collection.
// The order of the returned names is not specified.
func (c *collection[T]) Names() []string {
	return mapkit.Keys(c.index)
}

// Remove deletes the element at the given position and returns it.
// Every element after the removed one shifts a position down,
// and the name index is repaired to match.
//
// The repair walks the whole name index, so Remove costs O(n)
// in the total number of indexed elements.
func (c *collection[T]) Remove(position int) (T, bool) {
	if position < 0 || len(c.entries) <= position {
		var zero T
		return zero, false
	}
	e := c.entries[position]
	c.entries = append(c.entries[:position], c.entries[position+1:]...)
	if e.named {
		c.unindex(e.name, position)
	}
	c.shift(position)
	return e.value, true
}

// unindex drops a single position from a name's position list.
// A name whose position list drains is deleted from the index,
// so an all-removed name reports as absent, not as empty.
func (c *collection[T]) unindex(name string, position int) {
	positions := c.index[name]
	for i, p := range positions {
		if p == position {
			positions = append(positions[:i], positions[i+1:]...)
			break
		}
	}
	if len(positions) == 0 {
		delete(c.index, name)
		return
	}
	c.index[name] = positions
}

// shift decrements every indexed position that sat after the removed one.
func (c *collection[T]) shift(removed int) {
	for _, positions := range c.index {
		for i, p := range positions {
			if removed < p {
				positions[i] = p - 1
			}
		}
	}
}

func (c *collection[T]) Len() int {
	return len(c.entries)
}

func (c *collection[T]) IsEmpty() bool {
	return c.Len() == 0
}

// Clear empties the collection.
func (c *collection[T]) Clear() {
	c.entries = nil
	c.index = nil
}

// ToSlice returns the stored elements in positional order.
func (c *collection[T]) ToSlice() []T {
	return slicekit.Map(c.entries, func(e entry[T]) T {
		return e.value
	})
}

// Iter iterates over the stored elements in positional order.
func (c *collection[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, e := range c.entries {
			if !yield(e.value) {
				return
			}
		}
	}
}
