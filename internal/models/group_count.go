package models

import "sort"

// GroupCount is one bucket of an aggregation result.
type GroupCount struct {
	Label string
	Count int
}

// GroupCounter accumulates counts per label while remembering the order in
// which labels were first seen. Plain maps would lose that order, and the
// report contract ties tie-breaking to it.
type GroupCounter struct {
	order  []string
	counts map[string]int
}

func NewGroupCounter() *GroupCounter {
	return &GroupCounter{counts: make(map[string]int)}
}

func (g *GroupCounter) Add(label string) {
	if _, seen := g.counts[label]; !seen {
		g.order = append(g.order, label)
	}
	g.counts[label]++
}

// Groups returns the buckets in first-seen order.
func (g *GroupCounter) Groups() []GroupCount {
	groups := make([]GroupCount, 0, len(g.order))
	for _, label := range g.order {
		groups = append(groups, GroupCount{Label: label, Count: g.counts[label]})
	}
	return groups
}

// SortedGroups returns the buckets ordered by descending count; equal counts
// keep their first-seen order.
func (g *GroupCounter) SortedGroups() []GroupCount {
	groups := g.Groups()
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}
