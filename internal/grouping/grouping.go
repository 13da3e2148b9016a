// Package grouping collects runs of adjacent items that share a key.
//
// Contiguous only merges neighbours, so an unsorted input may yield the same
// key more than once. SortAndGroup sorts by key first, which makes every key
// appear exactly once.
package grouping

import (
	"cmp"
	"slices"
)

// Group is one run of items sharing Key, in their input order.
type Group[K comparable, T any] struct {
	Key    K
	Values []T
}

// Contiguous splits items into runs of equal keys.
func Contiguous[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	var groups []Group[K, T]

	for _, it := range items {
		k := key(it)
		if n := len(groups); n > 0 && groups[n-1].Key == k {
			groups[n-1].Values = append(groups[n-1].Values, it)
			continue
		}
		groups = append(groups, Group[K, T]{Key: k, Values: []T{it}})
	}

	return groups
}

// SortStable returns a copy of items ordered by key. Items with equal keys
// keep their relative order.
func SortStable[T any, K cmp.Ordered](items []T, key func(T) K) []T {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return sorted
}

// SortAndGroup sorts a copy of items by key and groups it. items is not modified.
func SortAndGroup[T any, K cmp.Ordered](items []T, key func(T) K) []Group[K, T] {
	return Contiguous(SortStable(items, key), key)
}
