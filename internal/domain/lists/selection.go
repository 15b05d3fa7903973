package lists

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
)

// MaxSelected is the number of lists a move session works on.
const MaxSelected = 2

// Selection is the ordered set of list numbers chosen for a move session.
// It never holds more than MaxSelected entries. The zero value is empty.
type Selection struct {
	numbers []int
}

// NewSelection builds a selection by toggling each number in turn, so the
// result obeys the same rules as interactive toggling.
func NewSelection(numbers ...int) Selection {
	var s Selection
	for _, n := range numbers {
		s = s.Toggle(n)
	}
	return s
}

// Toggle removes number if it is selected, adds it if fewer than
// MaxSelected lists are selected, and otherwise returns s unchanged.
func (s Selection) Toggle(number int) Selection {
	if i := slices.Index(s.numbers, number); i >= 0 {
		return Selection{numbers: slices.Delete(slices.Clone(s.numbers), i, i+1)}
	}
	if len(s.numbers) >= MaxSelected {
		return s
	}
	return Selection{numbers: append(slices.Clone(s.numbers), number)}
}

// Clear returns an empty selection.
func (s Selection) Clear() Selection {
	return Selection{}
}

// Contains reports whether number is selected.
func (s Selection) Contains(number int) bool {
	return slices.Contains(s.numbers, number)
}

// Len returns the number of selected lists.
func (s Selection) Len() int {
	return len(s.numbers)
}

// Numbers returns the selected list numbers in selection order.
func (s Selection) Numbers() []int {
	return slices.Clone(s.numbers)
}

// Pair returns the two selected numbers in selection order. It fails with
// domain.ErrSelectionInvalid unless exactly MaxSelected lists are selected.
func (s Selection) Pair() (first, second int, err error) {
	if len(s.numbers) != MaxSelected {
		return 0, 0, fmt.Errorf("%d selected: %w", len(s.numbers), domain.ErrSelectionInvalid)
	}
	return s.numbers[0], s.numbers[1], nil
}

// Retain drops selected numbers that are not present in c.
func (s Selection) Retain(c Collection) Selection {
	kept := make([]int, 0, len(s.numbers))
	for _, n := range s.numbers {
		if c.Has(n) {
			kept = append(kept, n)
		}
	}
	return Selection{numbers: kept}
}
