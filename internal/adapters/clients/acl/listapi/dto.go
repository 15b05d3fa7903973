// Package listapi implements the Anti-Corruption Layer translators for the
// remote list API's item resources.
package listapi

// ItemDTO matches one record of the remote list API.
// ID is a pointer so a missing id can be told apart from id 0.
type ItemDTO struct {
	ID          *int64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ListsResponseDTO matches the remote list API response body.
// Lists is a pointer so a missing or null array is detectable.
type ListsResponseDTO struct {
	Lists *[]ItemDTO `json:"lists"`
}
