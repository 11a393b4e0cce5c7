package puppybowl

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

const testCollectionPath = "/api/test-cohort/players"

func TestParseCollectionURL_DefaultsSchemeAndNormalizes(t *testing.T) {
	u, err := parseCollectionURL("example.com/api/c/players/?x=1#frag")
	if err != nil {
		t.Fatalf("parseCollectionURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Path != "/api/c/players" {
		t.Fatalf("path = %q, want /api/c/players", u.Path)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseCollectionURL("   "); err == nil {
		t.Fatalf("parseCollectionURL(blank) returned nil error, want error")
	}
}

func TestClient_FetchPlayersDecodesEnvelopeInServerOrder(t *testing.T) {
	t.Parallel()

	var gotAccept, gotUserAgent, gotRequestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != testCollectionPath {
			http.NotFound(w, r)
			return
		}
		gotAccept = r.Header.Get("Accept")
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get(requestIDHeader)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"success":true,"error":null,"data":{"players":[
			{"id":7,"name":"Banjo","breed":"Lab","status":"bench","imageUrl":"http://img/7.png"},
			{"id":"3","name":"Rex","breed":"Pug","status":"field","imageUrl":"http://img/3.png"}
		]}}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	players, err := c.FetchPlayers(ctx)
	if err != nil {
		t.Fatalf("FetchPlayers returned error: %v", err)
	}
	want := []Player{
		{ID: "7", Name: "Banjo", Breed: "Lab", Status: "bench", ImageURL: "http://img/7.png"},
		{ID: "3", Name: "Rex", Breed: "Pug", Status: "field", ImageURL: "http://img/3.png"},
	}
	if diff := cmp.Diff(want, players); diff != "" {
		t.Fatalf("FetchPlayers mismatch (-want +got):\n%s", diff)
	}
	if gotAccept != "application/json" {
		t.Fatalf("Accept = %q, want application/json", gotAccept)
	}
	if !strings.HasPrefix(gotUserAgent, "roster/") {
		t.Fatalf("User-Agent = %q, want roster/*", gotUserAgent)
	}
	if gotRequestID == "" {
		t.Fatalf("%s header missing", requestIDHeader)
	}
}

func TestClient_FetchPlayerRequestsMemberPath(t *testing.T) {
	t.Parallel()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, `{"success":true,"data":{"player":{"id":42,"name":"Rex","breed":"Lab","status":"field","imageUrl":"http://img/42.png"}}}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	player, err := c.FetchPlayer(context.Background(), "42")
	if err != nil {
		t.Fatalf("FetchPlayer returned error: %v", err)
	}
	if gotPath != testCollectionPath+"/42" {
		t.Fatalf("path = %q, want %q", gotPath, testCollectionPath+"/42")
	}
	if player.ID != "42" || player.Name != "Rex" || player.Breed != "Lab" || player.Status != "field" {
		t.Fatalf("FetchPlayer = %#v, want Rex/Lab/field id=42", player)
	}
}

func TestClient_FetchPlayerRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1/api/c/players")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchPlayer(context.Background(), " "); err == nil {
		t.Fatalf("FetchPlayer returned nil error, want error")
	}
	if _, err := c.RemovePlayer(context.Background(), ""); err == nil {
		t.Fatalf("RemovePlayer returned nil error, want error")
	}
}

func TestClient_AddPlayerPostsExactBody(t *testing.T) {
	t.Parallel()

	var gotMethod, gotContentType string
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = io.WriteString(w, `{"success":true,"data":{"newPlayer":{"id":99,"name":"Rex"}}}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	raw, err := c.AddPlayer(context.Background(), NewPlayer{Name: "Rex", Breed: "Lab", Status: "Available"})
	if err != nil {
		t.Fatalf("AddPlayer returned error: %v", err)
	}
	if gotMethod != http.MethodPost {
		t.Fatalf("method = %q, want POST", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	want := map[string]string{"name": "Rex", "breed": "Lab", "status": "Available"}
	if diff := cmp.Diff(want, gotBody); diff != "" {
		t.Fatalf("POST body mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(string(raw), `"newPlayer"`) {
		t.Fatalf("AddPlayer returned %s, want the verbatim body", raw)
	}
}

func TestClient_RemovePlayerIgnoresBodyShape(t *testing.T) {
	t.Parallel()

	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = io.WriteString(w, "gone")
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	raw, err := c.RemovePlayer(context.Background(), "5")
	if err != nil {
		t.Fatalf("RemovePlayer returned error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != testCollectionPath+"/5" {
		t.Fatalf("request = %s %s, want DELETE %s/5", gotMethod, gotPath, testCollectionPath)
	}
	if string(raw) != "gone" {
		t.Fatalf("RemovePlayer body = %q, want gone", raw)
	}
}

func TestClient_HTTPDecodeAndEnvelopeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case testCollectionPath:
			_, _ = io.WriteString(w, "{not-json")
		case testCollectionPath + "/1":
			http.Error(w, "nope", http.StatusInternalServerError)
		case testCollectionPath + "/2":
			_, _ = io.WriteString(w, `{"success":false,"error":{"name":"NotFound","message":"no player 2"},"data":null}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchPlayers(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchPlayers error = %v, want decode response error", err)
	}

	_, err = c.FetchPlayer(context.Background(), "1")
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchPlayer error = %v, want status 500 error", err)
	}

	_, err = c.FetchPlayer(context.Background(), "2")
	if err == nil || !strings.Contains(err.Error(), "no player 2") {
		t.Fatalf("FetchPlayer error = %v, want envelope error", err)
	}
}

func TestPlayerID_UnmarshalAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]PlayerID{
		`12`:       "12",
		`"abc"`:    "abc",
		`" 9 "`:    "9",
		`null`:     "",
		`1.5e3`:    "1.5e3",
		`12345678`: "12345678",
	}
	for in, want := range cases {
		var id PlayerID
		if err := json.Unmarshal([]byte(in), &id); err != nil {
			t.Fatalf("Unmarshal(%s) returned error: %v", in, err)
		}
		if id != want {
			t.Fatalf("Unmarshal(%s) = %q, want %q", in, id, want)
		}
	}
	var id PlayerID
	if err := json.Unmarshal([]byte(`{}`), &id); err == nil {
		t.Fatalf("Unmarshal({}) returned nil error, want error")
	}
}

func TestClient_RejectsIDsOutsideCollection(t *testing.T) {
	t.Parallel()

	var hits []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits = append(hits, r.Method+" "+r.URL.Path)
		_, _ = io.WriteString(w, `{"success":true}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	for _, id := range []PlayerID{".", "..", " .. ", "../../other", "x/y", `a\b`} {
		if _, err := c.RemovePlayer(context.Background(), id); err == nil {
			t.Fatalf("RemovePlayer(%q) returned nil error", id)
		}
		if _, err := c.FetchPlayer(context.Background(), id); err == nil {
			t.Fatalf("FetchPlayer(%q) returned nil error", id)
		}
	}
	if len(hits) != 0 {
		t.Fatalf("requests sent for invalid ids: %v", hits)
	}

	u, err := c.memberURL("..x")
	if err != nil {
		t.Fatalf("memberURL(..x) returned error: %v", err)
	}
	if u.Path != testCollectionPath+"/..x" {
		t.Fatalf("memberURL(..x) path = %q", u.Path)
	}
}

func TestClient_UnsuccessfulEnvelopeWithoutErrorObject(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"success false":   `{"success":false,"data":null}`,
		"missing players": `{"success":true,"data":{}}`,
		"null data":       `{"success":true,"data":null}`,
	}
	for name, body := range cases {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, body)
			}))
			t.Cleanup(server.Close)

			c, err := NewClient(server.URL + testCollectionPath)
			if err != nil {
				t.Fatalf("NewClient returned error: %v", err)
			}
			players, err := c.FetchPlayers(context.Background())
			if err == nil {
				t.Fatalf("FetchPlayers returned %v with nil error", players)
			}
		})
	}
}

func TestClient_EmptyPlayerListIsNotAnError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":true,"error":null,"data":{"players":[]}}`)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL + testCollectionPath)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	players, err := c.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("FetchPlayers returned error: %v", err)
	}
	if players == nil || len(players) != 0 {
		t.Fatalf("FetchPlayers = %#v, want empty non-nil slice", players)
	}
}
