package lists

import (
	"fmt"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
)

// DefaultNewListNumber numbers the new list when the collection is empty.
const DefaultNewListNumber = 3

// Pane names one of the three lists of a working set.
type Pane string

const (
	PaneList1   Pane = "list1"
	PaneList2   Pane = "list2"
	PaneNewList Pane = "new_list"
)

// IsValid returns true if the pane is one of the defined constants.
func (p Pane) IsValid() bool {
	switch p {
	case PaneList1, PaneList2, PaneNewList:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Pane) String() string {
	return string(p)
}

// WorkingSet holds the three lists of an active move session: copies of the
// two selected lists and the new list being assembled.
type WorkingSet struct {
	List1   List
	List2   List
	NewList List
}

// BuildWorkingSet copies the lists numbered first and second out of c and
// adds an empty new list numbered one past the highest number in c.
func BuildWorkingSet(c Collection, first, second int) (WorkingSet, error) {
	if first == second {
		return WorkingSet{}, fmt.Errorf("list %d selected twice: %w", first, domain.ErrSelectionInvalid)
	}

	l1, ok := c.Find(first)
	if !ok {
		return WorkingSet{}, fmt.Errorf("list %d: %w", first, domain.ErrSelectionUnresolvable)
	}
	l2, ok := c.Find(second)
	if !ok {
		return WorkingSet{}, fmt.Errorf("list %d: %w", second, domain.ErrSelectionUnresolvable)
	}

	newNumber := DefaultNewListNumber
	if highest, ok := c.MaxNumber(); ok {
		newNumber = highest + 1
	}

	return WorkingSet{
		List1:   l1.Clone(),
		List2:   l2.Clone(),
		NewList: List{Number: newNumber, Items: []Item{}},
	}, nil
}

// Clone returns a deep copy of the working set.
func (ws WorkingSet) Clone() WorkingSet {
	return WorkingSet{
		List1:   ws.List1.Clone(),
		List2:   ws.List2.Clone(),
		NewList: ws.NewList.Clone(),
	}
}

// Pane returns the list shown in pane p.
func (ws WorkingSet) Pane(p Pane) (List, bool) {
	switch p {
	case PaneList1:
		return ws.List1, true
	case PaneList2:
		return ws.List2, true
	case PaneNewList:
		return ws.NewList, true
	default:
		return List{}, false
	}
}

func (ws *WorkingSet) pane(p Pane) *List {
	switch p {
	case PaneList1:
		return &ws.List1
	case PaneList2:
		return &ws.List2
	case PaneNewList:
		return &ws.NewList
	default:
		return nil
	}
}

// Move relocates the item with the given ID from pane from to the end of
// pane to and returns the resulting working set; ws itself is not modified.
// Moving within one pane is a no-op. If the item is not in the source pane,
// ws is returned unchanged together with domain.ErrItemNotFound.
func (ws WorkingSet) Move(from, to Pane, itemID int64) (WorkingSet, error) {
	if !from.IsValid() || !to.IsValid() {
		fields := make(map[string]string, 2)
		if !from.IsValid() {
			fields["from"] = fmt.Sprintf("invalid: %q", from)
		}
		if !to.IsValid() {
			fields["to"] = fmt.Sprintf("invalid: %q", to)
		}
		return ws, &domain.ValidationError{Fields: fields}
	}
	if from == to {
		return ws, nil
	}

	src, _ := ws.Pane(from)
	idx := src.IndexOf(itemID)
	if idx < 0 {
		return ws, fmt.Errorf("item %d in %s: %w", itemID, from, domain.ErrItemNotFound)
	}

	next := ws.Clone()
	source, dest := next.pane(from), next.pane(to)
	moved := source.Items[idx]
	source.Items = append(source.Items[:idx], source.Items[idx+1:]...)
	dest.Items = append(dest.Items, moved)

	return next, nil
}

// ItemIDs returns the IDs held across all three panes, in pane order.
func (ws WorkingSet) ItemIDs() []int64 {
	ids := make([]int64, 0, ws.List1.Len()+ws.List2.Len()+ws.NewList.Len())
	for _, l := range []List{ws.List1, ws.List2, ws.NewList} {
		for _, it := range l.Items {
			ids = append(ids, it.ID)
		}
	}
	return ids
}
