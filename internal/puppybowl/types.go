package puppybowl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// PlayerID is the server-assigned identifier. The service emits numbers,
// but the client never does arithmetic on it, so it is kept as text.
type PlayerID string

// UnmarshalJSON accepts both numeric and string identifiers.
func (id *PlayerID) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*id = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return fmt.Errorf("player id: %w", err)
		}
		*id = PlayerID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("player id: %w", err)
	}
	*id = PlayerID(n.String())
	return nil
}

// String returns the identifier as it appears in URLs.
func (id PlayerID) String() string {
	return string(id)
}

// Player mirrors a roster entry as served by the players collection.
type Player struct {
	ID        PlayerID `json:"id"`
	Name      string   `json:"name"`
	Breed     string   `json:"breed"`
	Status    string   `json:"status"`
	ImageURL  string   `json:"imageUrl"`
	TeamID    *int64   `json:"teamId"`
	CohortID  *int64   `json:"cohortId"`
	CreatedAt string   `json:"createdAt"`
	UpdatedAt string   `json:"updatedAt"`
}

// NewPlayer is the body of a create request.
type NewPlayer struct {
	Name   string `json:"name"`
	Breed  string `json:"breed"`
	Status string `json:"status"`
}

// APIError is the error object the service places in failed envelopes.
type APIError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Name != "" && e.Message != "":
		return e.Name + ": " + e.Message
	case e.Message != "":
		return e.Message
	default:
		return e.Name
	}
}

// PlayerListResponse mirrors GET <collection>.
type PlayerListResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
	Data    struct {
		Players []Player `json:"players"`
	} `json:"data"`
}

// PlayerResponse mirrors GET <collection>/<id>.
type PlayerResponse struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
	Data    struct {
		Player *Player `json:"player"`
	} `json:"data"`
}

// envelopeErr reports a failed envelope. success:false is a failure even
// when the service sends no error object.
func envelopeErr(success bool, apiErr *APIError) error {
	if success {
		return nil
	}
	if apiErr == nil {
		return errors.New("api error: request was not successful")
	}
	return fmt.Errorf("api error: %w", apiErr)
}
