// Package backend defines the capability docuhook requires of an HTTP
// framework: mapping a path to a JSON-body handler.
//
// The reconciler registers one route per handler through this interface and
// never touches the transport itself. Concrete adapters live in the
// subpackages (httpmux for net/http, forgeadapter for xraph/forge); any
// framework can participate by implementing the single method.
package backend

import "context"

// JSONHandler receives the parsed JSON body of one inbound webhook POST.
// A returned error is the adapter's to surface (e.g. as a 500 response);
// docuhook does not swallow callback failures.
//
// Handlers hold no mutable state and are safe to invoke concurrently; any
// parallelism across deliveries is the adapter's choice.
type JSONHandler func(ctx context.Context, body map[string]any) error

// Backend maps webhook paths to JSON handlers. Adapters must deliver the
// parsed JSON object of every POST to the registered path's handler, at most
// once per request; invocation may be synchronous or deferred.
type Backend interface {
	RegisterRoute(path string, handler JSONHandler)
}
