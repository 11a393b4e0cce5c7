// Package puppybowl provides an HTTP client for the Puppy Bowl players API.
//
// # Overview
//
// The service exposes one JSON CRUD collection per cohort:
//
//	https://<host>/api/<cohort>/players
//
// The client wraps the four operations roster needs against that
// collection:
//
//   - GET    <collection>       -> {"success", "error", "data": {"players": [...]}}
//   - GET    <collection>/<id>  -> {"success", "error", "data": {"player": {...}}}
//   - POST   <collection>       body {"name", "breed", "status"}
//   - DELETE <collection>/<id>
//
// # Usage
//
//	client, err := puppybowl.NewClient(cfg.CollectionURL())
//	if err != nil {
//		return err
//	}
//	players, err := client.FetchPlayers(ctx)
//
// # Request Handling
//
// All requests:
//   - Use ctx for cancellation; the http.Client itself sets no timeout
//   - Set Accept: application/json and User-Agent: roster/0.1
//   - Carry a fresh X-Request-Id so a request can be matched to log lines
//   - Send Content-Type: application/json when a body is present
//
// Create and delete responses are returned as json.RawMessage. The service
// defines their shape, and roster only logs them. The delete body is not
// parsed at all.
//
// # Error Handling
//
// Errors are wrapped with fmt.Errorf and describe the failing step:
//
//   - "execute request: dial tcp: connection refused"
//   - "api GET /api/c/players/9 returned status 404"
//   - "decode response: unexpected end of JSON input"
//   - "api error: NotFound: no player 9" (envelope with success=false)
//
// Deciding what to do with them is left to the caller; package roster logs
// and discards them.
//
// # Identifiers
//
// Player ids are opaque. The service currently emits integers, but
// PlayerID accepts strings as well and is only ever joined into URLs.
package puppybowl
