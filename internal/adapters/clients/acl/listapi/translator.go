package listapi

import (
	"fmt"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// ToDomainItems converts a remote response to domain items in response
// order. It fails with domain.ErrMalformedData when the lists array is
// missing or a record has no id; nothing is returned in that case.
func ToDomainItems(dto ListsResponseDTO) ([]lists.Item, error) {
	if dto.Lists == nil {
		return nil, fmt.Errorf("response has no lists array: %w", domain.ErrMalformedData)
	}

	records := *dto.Lists
	items := make([]lists.Item, len(records))
	for i, r := range records {
		if r.ID == nil {
			return nil, fmt.Errorf("record %d has no id: %w", i, domain.ErrMalformedData)
		}
		items[i] = lists.Item{
			ID:          *r.ID,
			Name:        r.Name,
			Description: r.Description,
		}
	}
	return items, nil
}
