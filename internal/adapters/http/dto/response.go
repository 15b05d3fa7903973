// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/list-creation-service/internal/domain/board"
	"github.com/jsamuelsen11/list-creation-service/internal/domain/lists"
)

// ItemResponse represents a single list item in HTTP responses.
type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListResponse represents one numbered list in HTTP responses. Count is the
// number of items, shown by renderers as "N items".
type ListResponse struct {
	ListNumber int            `json:"list_number"`
	Items      []ItemResponse `json:"items"`
	Count      int            `json:"count"`
	Selected   bool           `json:"selected"`
}

// SessionResponse represents an open move session: the two selected lists
// and the new list being assembled.
type SessionResponse struct {
	ID        string       `json:"id"`
	StartedAt string       `json:"started_at"`
	Moves     int          `json:"moves"`
	List1     ListResponse `json:"list1"`
	List2     ListResponse `json:"list2"`
	NewList   ListResponse `json:"new_list"`
}

// BoardResponse is the full board snapshot returned by every board endpoint.
type BoardResponse struct {
	Lists      []ListResponse   `json:"lists"`
	Count      int              `json:"count"`
	Selection  []int            `json:"selection"`
	Phase      string           `json:"phase"`
	Status     string           `json:"status"`
	FetchError string           `json:"fetch_error,omitempty"`
	Notice     string           `json:"notice,omitempty"`
	Session    *SessionResponse `json:"session,omitempty"`
}

// ToItemResponse converts a domain Item to an HTTP response DTO.
func ToItemResponse(it lists.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
	}
}

// ToListResponse converts a domain List to an HTTP response DTO. Items is
// never nil so that empty lists encode as [].
func ToListResponse(l lists.List) ListResponse {
	items := make([]ItemResponse, len(l.Items))
	for i := range l.Items {
		items[i] = ToItemResponse(l.Items[i])
	}
	return ListResponse{
		ListNumber: l.Number,
		Items:      items,
		Count:      len(items),
	}
}

// ToBoardResponse converts a board State snapshot to an HTTP response DTO.
func ToBoardResponse(s board.State) BoardResponse {
	ls := make([]ListResponse, len(s.Lists))
	for i := range s.Lists {
		ls[i] = ToListResponse(s.Lists[i])
		ls[i].Selected = s.Selection.Contains(s.Lists[i].Number)
	}

	resp := BoardResponse{
		Lists:      ls,
		Count:      len(ls),
		Selection:  s.Selection.Numbers(),
		Phase:      string(s.Phase()),
		Status:     string(s.Status),
		FetchError: s.FetchError,
		Notice:     s.Notice,
	}
	if resp.Selection == nil {
		resp.Selection = []int{}
	}

	if s.Session != nil {
		resp.Session = &SessionResponse{
			ID:        s.Session.ID,
			StartedAt: s.Session.StartedAt.Format(time.RFC3339),
			Moves:     s.Session.Moves,
			List1:     ToListResponse(s.Session.Working.List1),
			List2:     ToListResponse(s.Session.Working.List2),
			NewList:   ToListResponse(s.Session.Working.NewList),
		}
	}

	return resp
}
