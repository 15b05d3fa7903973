package dto

import (
	"fmt"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

const msgRequired = "is required"

// MoveItemRequest represents the JSON body for moving one item between the
// panes of the open move session.
type MoveItemRequest struct {
	From   string `json:"from"`
	To     string `json:"to"`
	ItemID *int64 `json:"item_id"`
}

// Validate checks that both panes are known and an item id is present.
// Returns a *domain.ValidationError if any checks fail.
func (r *MoveItemRequest) Validate() error {
	fields := make(map[string]string)

	validatePane(fields, "from", r.From)
	validatePane(fields, "to", r.To)
	if r.ItemID == nil {
		fields["item_id"] = msgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func validatePane(fields map[string]string, name, value string) {
	switch {
	case value == "":
		fields[name] = msgRequired
	case !lists.Pane(value).IsValid():
		fields[name] = fmt.Sprintf("invalid: %q (must be one of: %s, %s, %s)",
			value, lists.PaneList1, lists.PaneList2, lists.PaneNewList)
	}
}
