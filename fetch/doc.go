// Package fetch provides a small, session-based HTTP fetch helper.
//
// A Session wraps a single *http.Client and exposes blocking Get and Post
// calls addressed by host, port, and path. Response bodies are accumulated
// into a Buffer sink; Post bodies are fed from a PayloadSource. The raw
// HTTP status is always returned to the caller — non-2xx completions are
// not errors, only local and transport failures are.
//
// # Basic Usage
//
//	session, err := fetch.New(fetch.Config{})
//	if err != nil {
//	    return err
//	}
//	defer session.Close(ctx)
//
//	resp, err := session.Post(ctx, "localhost", 5000, "/home", []byte(`{"hello":"world"}`))
//	if err != nil {
//	    return err
//	}
//	if !resp.IsSuccess() {
//	    // inspect resp.StatusCode; the body may still be present
//	}
//
// Sessions are safe for concurrent use. Close is idempotent.
package fetch
