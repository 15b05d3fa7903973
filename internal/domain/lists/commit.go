package lists

// Commit folds a working set back into c. The two selected lists are
// replaced by their working copies, even when a copy ended up empty; every
// other list passes through unchanged and in order. The new list is appended
// only if it holds at least one item.
//
// c is not modified. Clearing the selection afterwards is the caller's job.
func Commit(c Collection, ws WorkingSet) Collection {
	out := make(Collection, 0, len(c)+1)
	for _, l := range c {
		switch l.Number {
		case ws.List1.Number:
			out = append(out, ws.List1.Clone())
		case ws.List2.Number:
			out = append(out, ws.List2.Clone())
		default:
			out = append(out, l.Clone())
		}
	}

	if ws.NewList.Len() > 0 {
		out = append(out, ws.NewList.Clone())
	}
	return out
}
