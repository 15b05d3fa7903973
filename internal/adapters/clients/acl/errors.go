// Package acl is the anti-corruption layer in front of the remote list API.
// Wire records are translated in the listapi subpackage; this package runs
// the requests and maps remote failures onto domain errors.
package acl

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/jsamuelsen11/list-creation-service/internal/domain"
)

// maxProblemBytes bounds how much of a failed response is read.
const maxProblemBytes = 64 << 10

// remoteProblem is the subset of an RFC 9457 document the list API may send.
type remoteProblem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

// message prefers the detail, then the title.
func (p remoteProblem) message() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

// statusError wraps domain.ErrFetchFailed for a response outside 2xx. The
// remote problem detail is included when the body carries one.
func statusError(resp *http.Response) error {
	msg := readProblem(resp).message()
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("list API answered HTTP %d %s: %w", resp.StatusCode, msg, domain.ErrFetchFailed)
}

func readProblem(resp *http.Response) remoteProblem {
	var p remoteProblem
	if resp.Body == nil {
		return p
	}
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/problem+json" {
		return p
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxProblemBytes)).Decode(&p)
	return p
}
