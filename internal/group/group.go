package group

import "strings"

// Ungrouped is the synthesized bucket for items without a group label.
// It only exists in grouped views; it is never stored on the item.
const Ungrouped = "Ungrouped"

// Entry is one bucket of a grouped view.
type Entry[T any] struct {
	Key   string `json:"key"`
	Items []T    `json:"items"`
}

// Key maps an optional group label to a grouping key.
func Key(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return Ungrouped
	}
	return label
}

// By buckets items by key. Bucket order is the order of first appearance of
// each key while scanning items; items keep their relative order inside a
// bucket. Re-running over the same input yields the same output, so grouped
// views render stably across refreshes.
func By[T any](items []T, key func(T) string) []Entry[T] {
	var out []Entry[T]
	index := map[string]int{}
	for _, it := range items {
		k := key(it)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, Entry[T]{Key: k})
		}
		out[i].Items = append(out[i].Items, it)
	}
	return out
}
