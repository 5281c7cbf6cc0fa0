// Package neccontract provides reusable behavioral contracts
// for the nec collection variants.
//
// The contracts express the expectations any user of a named element
// collection can rely on: the name index always agrees with the
// positional view, removals compact positions and repair the index,
// and absence probes never mutate.
package neccontract

import (
	"fmt"
	"testing"

	"go.llib.dev/frameless/pkg/mapkit"
	"go.llib.dev/frameless/pkg/reflectkit"
	"go.llib.dev/frameless/pkg/zerokit"
	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/option"
	"go.llib.dev/nec"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

// Unique returns the behavioral contract of nec.Unique.
func Unique[T any](make func(tb testing.TB) *nec.Unique[T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		col := make(t)
		assert.True(t, col.IsEmpty())
		assert.Equal(t, 0, col.Len())

		var (
			name = c.makeName(t)
			v    = c.makeV(t)
		)
		_, ok := col.LookupByName(name)
		assert.False(t, ok)
		assert.False(t, col.ContainsName(name))

		position, err := col.PushNamed(name, v)
		assert.NoError(t, err)

		got, ok := col.Lookup(position)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		got, ok = col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		gotName, ok := col.NameOf(position)
		assert.True(t, ok)
		assert.Equal(t, name, gotName)
		assert.True(t, col.ContainsName(name))
		assert.Equal(t, 1, col.Len())
		assert.False(t, col.IsEmpty())
	})

	s.Test("a name labels at most one element", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)
		exp := c.makeV(t)
		_, err := col.PushNamed(name, exp)
		assert.NoError(t, err)

		t.Random.Repeat(1, 3, func() {
			_, err := col.PushNamed(name, c.makeV(t))
			assert.ErrorIs(t, err, nec.ErrDuplicateName)
		})

		assert.Equal(t, 1, col.Len())
		got, ok := col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, exp, got)
		uniqueInvariant(t, col)
	})

	s.Test("a failed push leaves the collection unchanged", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)
		_, err := col.PushNamed(name, c.makeV(t))
		assert.NoError(t, err)

		before := col.ToSlice()
		_, err = col.PushNamed(name, c.makeV(t))
		assert.ErrorIs(t, err, nec.ErrDuplicateName)
		assert.Equal(t, before, col.ToSlice())
		assert.ContainsExactly(t, []string{name}, col.Names())
	})

	s.Test("absence probes are read-only", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)
		_, err := col.PushNamed(name, c.makeV(t))
		assert.NoError(t, err)
		before := col.ToSlice()

		unknown := random.Unique(func() string { return c.makeName(t) }, name)
		t.Random.Repeat(2, 5, func() {
			_, ok := col.LookupByName(unknown)
			assert.False(t, ok)
			_, ok = col.Lookup(col.Len() + t.Random.IntBetween(0, 42))
			assert.False(t, ok)
			_, ok = col.Remove(col.Len() + t.Random.IntBetween(0, 42))
			assert.False(t, ok)
		})

		assert.Equal(t, before, col.ToSlice())
	})

	s.Test("removal compacts positions and repairs the index", func(t *testcase.T) {
		col := make(t)
		names := uniqueNames(t, c, t.Random.IntBetween(3, 7))
		for _, name := range names {
			_, err := col.PushNamed(name, c.makeV(t))
			assert.NoError(t, err)
		}

		removeAt := t.Random.IntBetween(0, len(names)-2)
		shifted, ok := col.Lookup(removeAt + 1)
		assert.True(t, ok)

		_, ok = col.Remove(removeAt)
		assert.True(t, ok)
		assert.Equal(t, len(names)-1, col.Len())

		got, ok := col.Lookup(removeAt)
		assert.True(t, ok)
		assert.Equal(t, shifted, got)
		assert.False(t, col.ContainsName(names[removeAt]))
		uniqueInvariant(t, col)
	})

	s.Test("a removed name becomes pushable again", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)
		position, err := col.PushNamed(name, c.makeV(t))
		assert.NoError(t, err)

		_, ok := col.Remove(position)
		assert.True(t, ok)
		assert.False(t, col.ContainsName(name))

		exp := c.makeV(t)
		_, err = col.PushNamed(name, exp)
		assert.NoError(t, err)
		got, ok := col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, exp, got)
	})

	s.Test("the index stays consistent over random operation sequences", func(t *testcase.T) {
		col := make(t)
		names := uniqueNames(t, c, t.Random.IntBetween(2, 5))
		t.Random.Repeat(10, 30, func() {
			if t.Random.Bool() {
				name := t.Random.SliceElement(names).(string)
				if _, err := col.PushNamed(name, c.makeV(t)); err != nil {
					assert.ErrorIs(t, err, nec.ErrDuplicateName)
				}
			} else if !col.IsEmpty() {
				_, ok := col.Remove(t.Random.IntBetween(0, col.Len()-1))
				assert.True(t, ok)
			}
			uniqueInvariant(t, col)
		})
	})

	return s.AsSuite(fmt.Sprintf("nec.Unique[%s]", reflectkit.TypeOf[T]().String()))
}

// Duplicate returns the behavioral contract of nec.Duplicate.
func Duplicate[T any](make func(tb testing.TB) *nec.Duplicate[T], opts ...Option[T]) contract.Contract {
	s := testcase.NewSpec(nil)
	c := option.ToConfig(opts)

	s.Test("smoke", func(t *testcase.T) {
		col := make(t)
		assert.True(t, col.IsEmpty())

		var (
			name = c.makeName(t)
			v    = c.makeV(t)
		)
		_, ok := col.LookupByName(name)
		assert.False(t, ok)

		position := col.PushNamed(name, v)
		got, ok := col.Lookup(position)
		assert.True(t, ok)
		assert.Equal(t, v, got)
		vs, ok := col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, []T{v}, vs)
		assert.True(t, col.ContainsName(name))
		assert.Equal(t, 1, col.Len())
	})

	s.Test("elements sharing a name are returned in insertion order", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)

		var exp []T
		t.Random.Repeat(2, 5, func() {
			v := c.makeV(t)
			exp = append(exp, v)
			col.PushNamed(name, v)
		})

		got, ok := col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, exp, got)
		duplicateInvariant(t, col)
	})

	s.Test("absence probes are read-only", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)
		col.PushNamed(name, c.makeV(t))
		before := col.ToSlice()

		unknown := random.Unique(func() string { return c.makeName(t) }, name)
		t.Random.Repeat(2, 5, func() {
			_, ok := col.LookupByName(unknown)
			assert.False(t, ok)
			_, ok = col.Lookup(col.Len() + t.Random.IntBetween(0, 42))
			assert.False(t, ok)
			_, ok = col.Remove(col.Len() + t.Random.IntBetween(0, 42))
			assert.False(t, ok)
		})

		assert.Equal(t, before, col.ToSlice())
	})

	s.Test("removal compacts positions and repairs the index", func(t *testcase.T) {
		col := make(t)
		var (
			shared = c.makeName(t)
			other  = random.Unique(func() string { return c.makeName(t) }, shared)
			first  = c.makeV(t)
			middle = c.makeV(t)
			last   = c.makeV(t)
		)
		col.PushNamed(shared, first)
		col.PushNamed(other, middle)
		col.PushNamed(shared, last)

		_, ok := col.Remove(0)
		assert.True(t, ok)
		assert.Equal(t, 2, col.Len())

		got, ok := col.Lookup(0)
		assert.True(t, ok)
		assert.Equal(t, middle, got)
		vs, ok := col.LookupByName(shared)
		assert.True(t, ok)
		assert.Equal(t, []T{last}, vs)
		duplicateInvariant(t, col)
	})

	s.Test("a name whose elements were all removed reports as absent", func(t *testcase.T) {
		col := make(t)
		name := c.makeName(t)
		n := t.Random.IntBetween(1, 3)
		for i := 0; i < n; i++ {
			col.PushNamed(name, c.makeV(t))
		}
		for i := 0; i < n; i++ {
			_, ok := col.Remove(0)
			assert.True(t, ok)
		}

		assert.False(t, col.ContainsName(name))
		_, ok := col.LookupByName(name)
		assert.False(t, ok)
		assert.NotContains(t, col.Names(), name)
	})

	s.Test("the index stays consistent over random operation sequences", func(t *testcase.T) {
		col := make(t)
		names := uniqueNames(t, c, t.Random.IntBetween(2, 4))
		t.Random.Repeat(10, 30, func() {
			if t.Random.Bool() || col.IsEmpty() {
				col.PushNamed(t.Random.SliceElement(names).(string), c.makeV(t))
			} else {
				_, ok := col.Remove(t.Random.IntBetween(0, col.Len()-1))
				assert.True(t, ok)
			}
			duplicateInvariant(t, col)
		})
	})

	return s.AsSuite(fmt.Sprintf("nec.Duplicate[%s]", reflectkit.TypeOf[T]().String()))
}

type Option[T any] interface {
	option.Option[Config[T]]
}

type Config[T any] struct {
	// MakeV creates a random element value. Required.
	MakeV func(testing.TB) T
	// MakeName creates a random element name.
	MakeName func(testing.TB) string
}

var _ Option[any] = Config[any]{}

func (c Config[T]) Configure(o *Config[T]) {
	o.MakeV = zerokit.Coalesce(c.MakeV, o.MakeV)
	o.MakeName = zerokit.Coalesce(c.MakeName, o.MakeName)
}

func (c Config[T]) makeV(tb testing.TB) T {
	if c.MakeV == nil {
		panic("neccontract: the MakeV option is required")
	}
	return c.MakeV(tb)
}

func (c Config[T]) makeName(tb testing.TB) string {
	return zerokit.Coalesce(c.MakeName, func(tb testing.TB) string {
		return testcase.ToT(&tb).Random.HexN(8)
	})(tb)
}

func uniqueNames[T any](t *testcase.T, c Config[T], n int) []string {
	var names []string
	for i := 0; i < n; i++ {
		names = append(names, random.Unique(func() string { return c.makeName(t) }, names...))
	}
	return names
}

// collection is the surface shared by both variants,
// enough to rebuild the expected name index from the positional view.
type collection[T any] interface {
	Len() int
	Lookup(position int) (T, bool)
	NameOf(position int) (string, bool)
	ContainsName(name string) bool
	Names() []string
}

// expectedIndex walks the collection positionally and asserts that the
// name-level views (Names, ContainsName) agree with what it found.
func expectedIndex[T any](t *testcase.T, col collection[T]) map[string][]T {
	exp := map[string][]T{}
	for position := 0; position < col.Len(); position++ {
		name, named := col.NameOf(position)
		if !named {
			continue
		}
		v, ok := col.Lookup(position)
		assert.True(t, ok)
		exp[name] = append(exp[name], v)
	}
	assert.ContainsExactly(t, mapkit.Keys(exp), col.Names())
	for name := range exp {
		assert.True(t, col.ContainsName(name))
	}
	return exp
}

func uniqueInvariant[T any](t *testcase.T, col *nec.Unique[T]) {
	for name, vs := range expectedIndex[T](t, col) {
		assert.Equal(t, 1, len(vs), assert.MessageF("%q should label exactly one element", name))
		got, ok := col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, vs[0], got)
	}
}

func duplicateInvariant[T any](t *testcase.T, col *nec.Duplicate[T]) {
	for name, vs := range expectedIndex[T](t, col) {
		got, ok := col.LookupByName(name)
		assert.True(t, ok)
		assert.Equal(t, vs, got, assert.MessageF("%q should list its elements in insertion order", name))
	}
}
