package nec_test

import (
	"testing"

	"go.llib.dev/nec"
	"go.llib.dev/nec/neccontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

// go.llib.dev/frameless/pkg/datastruct is not published in any frameless
// release, so the List[T] compliance assertion cannot compile:
//
//	var _ datastruct.List[string] = (*nec.Duplicate[string])(nil)

func TestDuplicate(t *testing.T) {
	s := testcase.NewSpec(t)

	col := let.Var(s, func(t *testcase.T) *nec.Duplicate[string] {
		return &nec.Duplicate[string]{}
	})

	s.Test("smoke", func(t *testcase.T) {
		var water nec.Duplicate[string]
		water.PushNamed("Hydrogen", "H1")
		water.PushNamed("Hydrogen", "H2")
		water.PushNamed("Oxygen", "O1")

		assert.Equal(t, 3, water.Len())

		hydrogens, ok := water.LookupByName("Hydrogen")
		assert.True(t, ok)
		assert.Equal(t, []string{"H1", "H2"}, hydrogens)

		oxygens, ok := water.LookupByName("Oxygen")
		assert.True(t, ok)
		assert.Equal(t, []string{"O1"}, oxygens)

		_, ok = water.LookupByName("Helium")
		assert.False(t, ok)

		assert.Equal(t, []string{"H1", "H2", "O1"}, water.ToSlice())
	})

	s.Describe("#PushNamed", func(s *testcase.Spec) {
		var (
			name = let.Var(s, func(t *testcase.T) string { return t.Random.HexN(8) })
		)

		s.Then("pushing the same name twice keeps both elements", func(t *testcase.T) {
			first, second := t.Random.String(), t.Random.String()
			p1 := col.Get(t).PushNamed(name.Get(t), first)
			p2 := col.Get(t).PushNamed(name.Get(t), second)

			assert.Equal(t, 0, p1)
			assert.Equal(t, 1, p2)
			assert.Equal(t, 2, col.Get(t).Len())

			vs, ok := col.Get(t).LookupByName(name.Get(t))
			assert.True(t, ok)
			assert.Equal(t, []string{first, second}, vs)
		})

		s.Then("retrieval order matches insertion order", func(t *testcase.T) {
			var exp []string
			t.Random.Repeat(3, 7, func() {
				v := t.Random.String()
				exp = append(exp, v)
				col.Get(t).PushNamed(name.Get(t), v)
			})

			got, ok := col.Get(t).LookupByName(name.Get(t))
			assert.True(t, ok)
			assert.Equal(t, exp, got)
		})
	})

	s.Describe("#Remove", func(s *testcase.Spec) {
		s.Test("removal repairs the positions of a shared name", func(t *testcase.T) {
			var water nec.Duplicate[string]
			water.PushNamed("Hydrogen", "H1") // position 0
			water.PushNamed("Oxygen", "O1")   // position 1
			water.PushNamed("Hydrogen", "H2") // position 2

			removed, ok := water.Remove(0)
			assert.True(t, ok)
			assert.Equal(t, "H1", removed)

			got, ok := water.Lookup(0)
			assert.True(t, ok)
			assert.Equal(t, "O1", got)
			name, named := water.NameOf(0)
			assert.True(t, named)
			assert.Equal(t, "Oxygen", name)

			got, ok = water.Lookup(1)
			assert.True(t, ok)
			assert.Equal(t, "H2", got)
			name, named = water.NameOf(1)
			assert.True(t, named)
			assert.Equal(t, "Hydrogen", name)

			hydrogens, ok := water.LookupByName("Hydrogen")
			assert.True(t, ok)
			assert.Equal(t, []string{"H2"}, hydrogens)
		})

		s.Test("a drained name reports as absent", func(t *testcase.T) {
			name := t.Random.HexN(8)
			n := t.Random.IntBetween(1, 3)
			for i := 0; i < n; i++ {
				col.Get(t).PushNamed(name, t.Random.String())
			}
			for i := 0; i < n; i++ {
				_, ok := col.Get(t).Remove(0)
				assert.True(t, ok)
			}

			assert.False(t, col.Get(t).ContainsName(name))
			_, ok := col.Get(t).LookupByName(name)
			assert.False(t, ok)
			assert.Empty(t, col.Get(t).Names())
		})

		s.Test("out of range reports absence", func(t *testcase.T) {
			_, ok := col.Get(t).Remove(t.Random.IntBetween(0, 42))
			assert.False(t, ok)
		})
	})

	s.Describe("#Append", func(s *testcase.Spec) {
		s.Test("values without the Nameable capability stay unnamed", func(t *testcase.T) {
			vs := []string{t.Random.String(), t.Random.String(), t.Random.String()}
			col.Get(t).Append(vs...)

			assert.Equal(t, vs, col.Get(t).ToSlice())
			assert.Empty(t, col.Get(t).Names())
			for position := range vs {
				_, named := col.Get(t).NameOf(position)
				assert.False(t, named)
			}
		})

		s.Test("Nameable values name themselves", func(t *testcase.T) {
			var col nec.Duplicate[atom]
			col.Append(
				atom{Symbol: "H", Proton: 1, Neutron: 0},
				atom{Symbol: "H", Proton: 1, Neutron: 1},
				atom{Symbol: "O", Proton: 8, Neutron: 8},
			)

			hydrogens, ok := col.LookupByName("H")
			assert.True(t, ok)
			assert.Equal(t, 2, len(hydrogens))
			assert.Equal(t, 0, hydrogens[0].Neutron)
			assert.Equal(t, 1, hydrogens[1].Neutron)
		})
	})

	s.Describe("#Iter", func(s *testcase.Spec) {
		s.Test("yields values in positional order", func(t *testcase.T) {
			var exp []string
			t.Random.Repeat(3, 7, func() {
				v := t.Random.String()
				exp = append(exp, v)
				col.Get(t).PushNamed(t.Random.HexN(8), v)
			})

			var got []string
			for v := range col.Get(t).Iter() {
				got = append(got, v)
			}
			assert.Equal(t, exp, got)
		})

		s.Test("stops when the consumer breaks", func(t *testcase.T) {
			col.Get(t).Append(t.Random.String(), t.Random.String(), t.Random.String())

			var n int
			for range col.Get(t).Iter() {
				n++
				break
			}
			assert.Equal(t, 1, n)
		})
	})
}

func TestDuplicate_contract(t *testing.T) {
	testcase.RunSuite(t, neccontract.Duplicate[string](func(tb testing.TB) *nec.Duplicate[string] {
		return &nec.Duplicate[string]{}
	}, neccontract.Config[string]{
		MakeV: func(tb testing.TB) string {
			return testcase.ToT(&tb).Random.String()
		},
	}))
}

func TestMakeDuplicate(t *testing.T) {
	col := nec.MakeDuplicate(
		atom{Symbol: "H", Proton: 1, Neutron: 0},
		atom{Symbol: "H", Proton: 1, Neutron: 0},
		atom{Symbol: "O", Proton: 8, Neutron: 8},
	)
	assert.Equal(t, 3, col.Len())
	hydrogens, ok := col.LookupByName("H")
	assert.True(t, ok)
	assert.Equal(t, 2, len(hydrogens))
}
