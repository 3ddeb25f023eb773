package review

import "monreview/internal/monitor"

// Classification is the derived OK/problem partition of the loaded items.
// OKItems and ProblemItems are disjoint and together cover every item.
type Classification struct {
	OKItems      []monitor.Item
	ProblemItems []monitor.Item
	HasProblems  bool
}

// Classify partitions items by the selection set. An empty selection means
// every item is confirmed healthy, not that nothing is confirmed; this
// mirrors the submission semantics and must not be "fixed". Selected ids
// that no longer exist in items are silently ignored.
func Classify(items []monitor.Item, sel *SelectionSet) Classification {
	var c Classification
	if sel == nil || sel.Size() == 0 {
		c.OKItems = append(c.OKItems, items...)
		return c
	}
	for _, it := range items {
		if sel.Has(it.ID) {
			c.OKItems = append(c.OKItems, it)
		} else {
			c.ProblemItems = append(c.ProblemItems, it)
		}
	}
	c.HasProblems = len(c.ProblemItems) > 0
	return c
}
