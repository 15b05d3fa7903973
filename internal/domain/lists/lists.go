// Package lists models the item lists a user redistributes during a move
// session: the partitioned collection, the selection of two lists, the
// three-pane working set and the commit that folds it back.
//
// Every operation is a pure transformation. Values returned by this package
// never share backing arrays with their inputs, so a working set can be
// mutated freely without touching the collection it was built from.
package lists

import "slices"

// Item is an atomic record fetched from the list source. Identity is ID,
// which is unique across the whole collection.
type Item struct {
	ID          int64
	Name        string
	Description string
}

// List is an ordered sequence of items identified by a unique list number.
type List struct {
	Number int
	Items  []Item
}

// Clone returns a copy of the list whose Items slice is independent of l.
// A nil Items slice stays nil.
func (l List) Clone() List {
	return List{Number: l.Number, Items: slices.Clone(l.Items)}
}

// Len returns the number of items in the list.
func (l List) Len() int {
	return len(l.Items)
}

// IndexOf returns the position of the item with the given ID, or -1.
func (l List) IndexOf(id int64) int {
	return slices.IndexFunc(l.Items, func(it Item) bool { return it.ID == id })
}

// Collection is the ordered set of lists. Order is creation order and is
// never re-sorted by list number.
type Collection []List

// Clone returns a deep copy of the collection.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, l := range c {
		out[i] = l.Clone()
	}
	return out
}

// Find returns the list with the given number.
func (c Collection) Find(number int) (List, bool) {
	for _, l := range c {
		if l.Number == number {
			return l, true
		}
	}
	return List{}, false
}

// Has reports whether a list with the given number exists.
func (c Collection) Has(number int) bool {
	_, ok := c.Find(number)
	return ok
}

// MaxNumber returns the largest list number, or false for an empty collection.
func (c Collection) MaxNumber() (int, bool) {
	if len(c) == 0 {
		return 0, false
	}
	highest := c[0].Number
	for _, l := range c[1:] {
		highest = max(highest, l.Number)
	}
	return highest, true
}

// ItemCount returns the total number of items across all lists.
func (c Collection) ItemCount() int {
	n := 0
	for _, l := range c {
		n += l.Len()
	}
	return n
}
