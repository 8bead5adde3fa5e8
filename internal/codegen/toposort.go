package codegen

import (
	"fmt"
	"slices"
	"sort"
	"strings"
)

// TopoOrder orders the keys of deps so that every name comes after the names
// it depends on. Dependencies that are not keys of deps are ignored. Among
// names that are ready at the same time the lexicographically smallest goes
// first, so the order is deterministic.
func TopoOrder(deps map[string][]string) ([]string, error) {
	indegree := make(map[string]int, len(deps))
	children := make(map[string][]string, len(deps))
	for name, parents := range deps {
		seen := make(map[string]bool, len(parents))
		for _, p := range parents {
			if _, known := deps[p]; !known || seen[p] {
				continue
			}
			seen[p] = true
			indegree[name]++
			children[p] = append(children[p], name)
		}
	}

	var ready []string
	for name := range deps {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}
	sort.Strings(ready)

	order := make([]string, 0, len(deps))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		order = append(order, name)
		for _, child := range children[name] {
			indegree[child]--
			if indegree[child] == 0 {
				i, _ := slices.BinarySearch(ready, child)
				ready = slices.Insert(ready, i, child)
			}
		}
	}

	if len(order) != len(deps) {
		var stuck []string
		for name := range deps {
			if indegree[name] > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("%w: %v", ErrCyclicHierarchy, stuck)
	}
	return order, nil
}

// sortClassDefs returns the class definitions with parents before children.
func sortClassDefs(defs []classDef) ([]classDef, error) {
	sorted := slices.Clone(defs)
	slices.SortStableFunc(sorted, func(a, b classDef) int {
		return strings.Compare(a.name(), b.name())
	})

	deps := make(map[string][]string, len(sorted))
	for _, c := range sorted {
		deps[c.name()] = baseNames(c.spec)
	}
	order, err := TopoOrder(deps)
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(order))
	for i, name := range order {
		index[name] = i
	}
	slices.SortStableFunc(sorted, func(a, b classDef) int {
		return index[a.name()] - index[b.name()]
	})
	return sorted, nil
}
