package nec

// Duplicate is a named element collection in which any number of elements
// may share a name.
// Name lookup returns every match, in the order they were pushed.
type Duplicate[T any] struct {
	collection[T]
}

// go.llib.dev/frameless/pkg/datastruct is not published in any frameless
// release, so the List[T] compliance assertion cannot compile:
//
//	var _ datastruct.List[any] = (*Duplicate[any])(nil)

// Push appends an element at the end of the collection
// and returns its position.
//
// When the element implements Nameable, its name is derived on the spot
// and indexed; otherwise the element is stored without a name
// and stays reachable only by position.
func (c *Duplicate[T]) Push(v T) int {
	if name, named := nameOf(v); named {
		return c.PushNamed(name, v)
	}
	return c.push(entry[T]{value: v})
}

// PushNamed appends an element under the given name
// and returns its position.
// The new position lines up after any earlier positions of the same name,
// so LookupByName keeps returning elements in insertion order.
func (c *Duplicate[T]) PushNamed(name string, v T) int {
	return c.push(entry[T]{value: v, name: name, named: true})
}

// Append pushes each given element, to fit where a datastruct.List is expected.
func (c *Duplicate[T]) Append(vs ...T) {
	for _, v := range vs {
		c.Push(v)
	}
}

// LookupByName returns every element stored under the given name,
// in insertion order.
// An unknown name is a normal outcome, reported as (nil, false);
// a name whose elements were all removed counts as unknown.
func (c *Duplicate[T]) LookupByName(name string) ([]T, bool) {
	positions, ok := c.index[name]
	if !ok {
		return nil, false
	}
	vs := make([]T, 0, len(positions))
	for _, p := range positions {
		vs = append(vs, c.entries[p].value)
	}
	return vs, true
}

// MakeDuplicate builds a Duplicate collection from self-naming elements.
func MakeDuplicate[T Nameable](vs ...T) Duplicate[T] {
	var c Duplicate[T]
	c.Append(vs...)
	return c
}
