package puppybowl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// PlayerService defines the four roster operations. It is implemented by
// *Client and can be faked in tests.
type PlayerService interface {
	FetchPlayers(ctx context.Context) ([]Player, error)
	FetchPlayer(ctx context.Context, id PlayerID) (*Player, error)
	AddPlayer(ctx context.Context, fields NewPlayer) (json.RawMessage, error)
	RemovePlayer(ctx context.Context, id PlayerID) (json.RawMessage, error)
}

// Ensure Client implements PlayerService at compile time.
var _ PlayerService = (*Client)(nil)

// Client talks to the players collection of the Puppy Bowl API.
type Client struct {
	collection *url.URL
	http       *http.Client
	userAgent  string
}

const (
	defaultUserAgent = "roster/0.1"
	requestIDHeader  = "X-Request-Id"
)

// NewClient builds a Client for the given collection URL, for example
// https://fsa-puppy-bowl.herokuapp.com/api/2302-ACC-CT-WEB-PT-A/players.
func NewClient(collectionURL string) (*Client, error) {
	base, err := parseCollectionURL(collectionURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		collection: base,
		// No timeout: requests end when the server answers or ctx is done.
		http:      &http.Client{},
		userAgent: defaultUserAgent,
	}, nil
}

// CollectionURL returns the normalized collection endpoint.
func (c *Client) CollectionURL() string {
	if c == nil || c.collection == nil {
		return ""
	}
	return c.collection.String()
}

// FetchPlayers retrieves every player in the collection, in server order.
func (c *Client) FetchPlayers(ctx context.Context) ([]Player, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload PlayerListResponse
	if err := c.do(ctx, http.MethodGet, c.collection, nil, &payload); err != nil {
		return nil, err
	}
	if err := envelopeErr(payload.Success, payload.Error); err != nil {
		return nil, err
	}
	if payload.Data.Players == nil {
		return nil, fmt.Errorf("api %s returned no players", c.collection.Path)
	}
	return payload.Data.Players, nil
}

// FetchPlayer retrieves a single player.
func (c *Client) FetchPlayer(ctx context.Context, id PlayerID) (*Player, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	target, err := c.memberURL(id)
	if err != nil {
		return nil, err
	}
	var payload PlayerResponse
	if err := c.do(ctx, http.MethodGet, target, nil, &payload); err != nil {
		return nil, err
	}
	if err := envelopeErr(payload.Success, payload.Error); err != nil {
		return nil, err
	}
	if payload.Data.Player == nil {
		return nil, fmt.Errorf("api %s returned no player", target.Path)
	}
	return payload.Data.Player, nil
}

// AddPlayer creates a player and returns the response body untouched.
func (c *Client) AddPlayer(ctx context.Context, fields NewPlayer) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode player: %w", err)
	}
	var payload json.RawMessage
	if err := c.do(ctx, http.MethodPost, c.collection, body, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

// RemovePlayer deletes a player. The response body is returned raw and is
// never parsed, so any body shape counts as success.
func (c *Client) RemovePlayer(ctx context.Context, id PlayerID) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	target, err := c.memberURL(id)
	if err != nil {
		return nil, err
	}
	raw, err := c.doRaw(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(raw), nil
}

func (c *Client) memberURL(id PlayerID) (*url.URL, error) {
	trimmed := strings.TrimSpace(id.String())
	if trimmed == "" {
		return nil, fmt.Errorf("player id required")
	}
	// JoinPath cleans dot segments, so these would address another resource.
	if trimmed == "." || trimmed == ".." || strings.ContainsAny(trimmed, `/\`) {
		return nil, fmt.Errorf("invalid player id %q", trimmed)
	}
	return c.collection.JoinPath(trimmed), nil
}

func (c *Client) do(ctx context.Context, method string, target *url.URL, body []byte, dest any) error {
	raw, err := c.doRaw(ctx, method, target, body)
	if err != nil {
		return err
	}
	if dest == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method string, target *url.URL, body []byte) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(requestIDHeader, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("api %s %s returned status %d", method, target.Path, resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return raw, nil
}

func parseCollectionURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("collection url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse collection url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("collection url %q has no host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
