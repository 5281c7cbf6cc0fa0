package nec

// Unique is a named element collection in which a name
// may label at most one element.
//
// Pushing under an already taken name fails with ErrDuplicateName
// and leaves the collection untouched.
// Treat such a failure as a caller logic error to handle in place;
// retrying with the same name cannot succeed
// until the conflicting element is removed.
type Unique[T any] struct {
	collection[T]
}

// Push appends an element at the end of the collection
// and returns its position.
//
// When the element implements Nameable, its name is derived on the spot
// and indexed; otherwise the element is stored without a name
// and stays reachable only by position.
func (c *Unique[T]) Push(v T) (int, error) {
	if name, named := nameOf(v); named {
		return c.PushNamed(name, v)
	}
	return c.push(entry[T]{value: v}), nil
}

// PushNamed appends an element under the given name
// and returns its position.
func (c *Unique[T]) PushNamed(name string, v T) (int, error) {
	if c.ContainsName(name) {
		return 0, ErrDuplicateName.F("%q", name)
	}
	return c.push(entry[T]{value: v, name: name, named: true}), nil
}

// LookupByName returns the element stored under the given name.
// An unknown name is a normal outcome, reported as (zero value, false).
func (c *Unique[T]) LookupByName(name string) (T, bool) {
	positions, ok := c.index[name]
	if !ok {
		var zero T
		return zero, false
	}
	return c.entries[positions[0]].value, true
}

// MakeUnique builds a Unique collection from self-naming elements.
// It fails with ErrDuplicateName when two elements share a name.
func MakeUnique[T Nameable](vs ...T) (Unique[T], error) {
	var c Unique[T]
	for _, v := range vs {
		if _, err := c.Push(v); err != nil {
			return Unique[T]{}, err
		}
	}
	return c, nil
}
