package codegen

import (
	"fmt"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoOrder(t *testing.T) {
	tests := []struct {
		name string
		deps map[string][]string
		want []string
	}{
		{
			name: "independent names are sorted",
			deps: map[string][]string{"B": nil, "A": nil, "C": nil},
			want: []string{"A", "B", "C"},
		},
		{
			name: "parent first",
			deps: map[string][]string{"A": {"Z"}, "Z": nil, "B": nil},
			want: []string{"B", "Z", "A"},
		},
		{
			name: "external bases ignored",
			deps: map[string][]string{"X": {"gqlbase.GQLResult"}, "W": {"fragments.PageInfoFragment"}},
			want: []string{"W", "X"},
		},
		{
			name: "diamond",
			deps: map[string][]string{"D": {"B", "C"}, "C": {"A"}, "B": {"A"}, "A": nil},
			want: []string{"A", "B", "C", "D"},
		},
		{
			name: "duplicate parents",
			deps: map[string][]string{"B": {"A", "A"}, "A": nil},
			want: []string{"A", "B"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TopoOrder(tt.deps)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTopoOrder_Cycle(t *testing.T) {
	_, err := TopoOrder(map[string][]string{"A": {"B"}, "B": {"A"}, "C": nil})
	assert.ErrorIs(t, err, ErrCyclicHierarchy)
	assert.Contains(t, err.Error(), "[A B]")

	_, err = TopoOrder(map[string][]string{"A": {"A"}})
	assert.ErrorIs(t, err, ErrCyclicHierarchy)
}

// hierarchyFromSeeds builds an acyclic hierarchy: node i may only embed
// nodes created before it. Names are derived from the seeds so that the
// creation order and the lexicographic order disagree.
func hierarchyFromSeeds(seeds []int) map[string][]string {
	names := make([]string, len(seeds))
	deps := make(map[string][]string, len(seeds))
	for i, v := range seeds {
		names[i] = fmt.Sprintf("T%04d_%d", v, i)
		var parents []string
		if i > 0 {
			for k := 0; k < v%3; k++ {
				parents = append(parents, names[(v/3+k*31)%i])
			}
		}
		if v%5 == 0 {
			parents = append(parents, "gqlbase.GQLResult")
		}
		deps[names[i]] = parents
	}
	return deps
}

func TestTopoOrderProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	seeds := gen.SliceOf(gen.IntRange(0, 9999))

	properties.Property("parents come before children", prop.ForAll(
		func(seeds []int) bool {
			deps := hierarchyFromSeeds(seeds)
			order, err := TopoOrder(deps)
			if err != nil {
				return false
			}
			pos := make(map[string]int, len(order))
			for i, name := range order {
				pos[name] = i
			}
			for child, parents := range deps {
				for _, p := range parents {
					if i, ok := pos[p]; ok && i >= pos[child] {
						return false
					}
				}
			}
			return true
		},
		seeds,
	))

	properties.Property("order is a permutation of the names", prop.ForAll(
		func(seeds []int) bool {
			deps := hierarchyFromSeeds(seeds)
			order, err := TopoOrder(deps)
			if err != nil || len(order) != len(deps) {
				return false
			}
			for _, name := range order {
				if _, ok := deps[name]; !ok {
					return false
				}
			}
			return true
		},
		seeds,
	))

	properties.Property("order is deterministic", prop.ForAll(
		func(seeds []int) bool {
			first, err1 := TopoOrder(hierarchyFromSeeds(seeds))
			second, err2 := TopoOrder(hierarchyFromSeeds(seeds))
			return err1 == nil && err2 == nil && slices.Equal(first, second)
		},
		seeds,
	))

	properties.TestingRun(t)
}
