package roster

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/roster/internal/puppybowl"
)

type fakeService struct {
	players   []puppybowl.Player
	player    *puppybowl.Player
	created   json.RawMessage
	err       error
	gotFields []puppybowl.NewPlayer
	gotIDs    []puppybowl.PlayerID
}

func (f *fakeService) FetchPlayers(context.Context) ([]puppybowl.Player, error) {
	return f.players, f.err
}

func (f *fakeService) FetchPlayer(_ context.Context, id puppybowl.PlayerID) (*puppybowl.Player, error) {
	f.gotIDs = append(f.gotIDs, id)
	return f.player, f.err
}

func (f *fakeService) AddPlayer(_ context.Context, fields puppybowl.NewPlayer) (json.RawMessage, error) {
	f.gotFields = append(f.gotFields, fields)
	return f.created, f.err
}

func (f *fakeService) RemovePlayer(_ context.Context, id puppybowl.PlayerID) (json.RawMessage, error) {
	f.gotIDs = append(f.gotIDs, id)
	return json.RawMessage("not json"), f.err
}

func newTestAPI(svc puppybowl.PlayerService) (*API, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(svc, log.New(&buf, "", 0)), &buf
}

func TestListAll_ReturnsPlayersInServerOrder(t *testing.T) {
	svc := &fakeService{players: []puppybowl.Player{
		{ID: "2", Name: "Banjo"},
		{ID: "1", Name: "Rex"},
	}}
	api, logs := newTestAPI(svc)

	got := api.ListAll(context.Background())
	want := []Player{{ID: "2", Name: "Banjo"}, {ID: "1", Name: "Rex"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("ListAll mismatch (-want +got):\n%s", diff)
	}
	if logs.Len() != 0 {
		t.Fatalf("ListAll logged %q on success", logs.String())
	}
}

func TestListAll_FailureLogsAndReturnsNil(t *testing.T) {
	api, logs := newTestAPI(&fakeService{err: errors.New("dial tcp: connection refused")})

	if got := api.ListAll(context.Background()); got != nil {
		t.Fatalf("ListAll = %#v, want nil", got)
	}
	if !strings.Contains(logs.String(), "trouble fetching players") ||
		!strings.Contains(logs.String(), "connection refused") {
		t.Fatalf("log = %q, want message and underlying error", logs.String())
	}
}

func TestGetOne_PassesIDAndSanitizes(t *testing.T) {
	svc := &fakeService{player: &puppybowl.Player{ID: "9", Name: "<b>Rex</b> &amp; Co", Breed: "Lab", Status: "field"}}
	api, _ := newTestAPI(svc)

	got := api.GetOne(context.Background(), "9")
	if got == nil {
		t.Fatalf("GetOne returned nil")
	}
	if got.Name != "Rex & Co" {
		t.Fatalf("Name = %q, want markup stripped", got.Name)
	}
	if len(svc.gotIDs) != 1 || svc.gotIDs[0] != "9" {
		t.Fatalf("ids = %v, want [9]", svc.gotIDs)
	}
}

func TestGetOne_FailureLogsAndReturnsNil(t *testing.T) {
	api, logs := newTestAPI(&fakeService{err: errors.New("boom")})
	if got := api.GetOne(context.Background(), "4"); got != nil {
		t.Fatalf("GetOne = %#v, want nil", got)
	}
	if !strings.Contains(logs.String(), "player #4") {
		t.Fatalf("log = %q, want player id", logs.String())
	}
}

func TestCreate_ForwardsFieldsAndLogsBody(t *testing.T) {
	svc := &fakeService{created: json.RawMessage(`{ "success": true }`)}
	api, logs := newTestAPI(svc)

	fields := Fields{Name: "Rex", Breed: "Lab", Status: "Available"}
	raw := api.Create(context.Background(), fields)
	if string(raw) != `{ "success": true }` {
		t.Fatalf("Create = %s, want verbatim body", raw)
	}
	if diff := cmp.Diff([]Fields{fields}, svc.gotFields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), `created player: {"success":true}`) {
		t.Fatalf("log = %q, want compacted body", logs.String())
	}
}

func TestCreate_FailureLogsOnly(t *testing.T) {
	api, logs := newTestAPI(&fakeService{err: errors.New("boom")})
	if raw := api.Create(context.Background(), Fields{Name: "x"}); raw != nil {
		t.Fatalf("Create = %s, want nil", raw)
	}
	if !strings.Contains(logs.String(), "adding that player") {
		t.Fatalf("log = %q, want create failure message", logs.String())
	}
}

func TestRemove_ReportsCompletion(t *testing.T) {
	svc := &fakeService{}
	api, _ := newTestAPI(svc)
	if !api.Remove(context.Background(), "5") {
		t.Fatalf("Remove = false, want true when the request completes")
	}

	failing, logs := newTestAPI(&fakeService{err: errors.New("boom")})
	if failing.Remove(context.Background(), "5") {
		t.Fatalf("Remove = true, want false on failure")
	}
	if !strings.Contains(logs.String(), "removing player #5") {
		t.Fatalf("log = %q, want remove failure message", logs.String())
	}
}

func TestNilAPIIsInert(t *testing.T) {
	var api *API
	if api.ListAll(context.Background()) != nil || api.GetOne(context.Background(), "1") != nil ||
		api.Create(context.Background(), Fields{}) != nil || api.Remove(context.Background(), "1") {
		t.Fatalf("nil API should return zero values")
	}
}

func TestListAll_UnsuccessfulEnvelopeIsLogged(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"success":false,"data":null}`)
	}))
	t.Cleanup(server.Close)

	client, err := puppybowl.NewClient(server.URL + "/api/test-cohort/players")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	api, logs := newTestAPI(client)

	if got := api.ListAll(context.Background()); got != nil {
		t.Fatalf("ListAll = %#v, want nil", got)
	}
	if !strings.Contains(logs.String(), "trouble fetching players") {
		t.Fatalf("ListAll logged %q, want failure message", logs.String())
	}
}

func TestCreate_CapsLoggedBody(t *testing.T) {
	long := strings.Repeat("é", maxLoggedBody)
	svc := &fakeService{created: json.RawMessage(`{"name":"` + long + `"}`)}
	api, logs := newTestAPI(svc)

	raw := api.Create(context.Background(), Fields{Name: "Rex"})
	if len(raw) != len(svc.created) {
		t.Fatalf("Create returned %d bytes, want the full %d", len(raw), len(svc.created))
	}
	line := logs.String()
	if len(line) > maxLoggedBody+100 {
		t.Fatalf("logged %d bytes, want at most about %d", len(line), maxLoggedBody)
	}
	if !strings.Contains(line, "bytes)") || !utf8.ValidString(line) {
		t.Fatalf("logged line not truncated cleanly: %q", line[len(line)-40:])
	}
}
