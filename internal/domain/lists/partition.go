package lists

import (
	"fmt"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
)

// Numbers assigned to the two lists produced by Partition.
const (
	FirstListNumber  = 1
	SecondListNumber = 2
)

// Partition splits a flat, ordered sequence of items into the two initial
// lists: items at even indexes go to list 1, items at odd indexes to list 2.
// Both lists are always present, even when empty.
//
// Duplicate item IDs make the input malformed; in that case no collection is
// returned at all.
func Partition(records []Item) (Collection, error) {
	seen := make(map[int64]int, len(records))
	first := List{Number: FirstListNumber, Items: make([]Item, 0, (len(records)+1)/2)}
	second := List{Number: SecondListNumber, Items: make([]Item, 0, len(records)/2)}

	for i, rec := range records {
		if prev, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("item id %d at index %d duplicates index %d: %w",
				rec.ID, i, prev, domain.ErrMalformedData)
		}
		seen[rec.ID] = i

		if i%2 == 0 {
			first.Items = append(first.Items, rec)
		} else {
			second.Items = append(second.Items, rec)
		}
	}

	return Collection{first, second}, nil
}
