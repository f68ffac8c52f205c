// Package inspect exposes read-only HTTP debug endpoints over a machine.
// The core has no network surface of its own; these routes are the
// rendering path for external tooling, mountable under any mux.
package inspect

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Machine is the read-only view the debug routes need. Every machine
// flavor in pkg/fsm satisfies it; pick the synced flavor when the machine
// is dispatched concurrently with serving.
type Machine interface {
	CurrentLabel() string
	DOT() string
	Mermaid() string
}

// Routes serves debug endpoints for m:
//
//	GET /state      {"state":"<label>"} as application/json
//	GET /graph.dot  transition graph in Graphviz DOT form
//	GET /graph.mmd  transition graph in Mermaid form
//
// Example:
//
//	r := chi.NewRouter()
//	r.Mount("/debug/fsm", inspect.Routes(machine))
func Routes(m Machine) http.Handler {
	r := chi.NewRouter()
	r.Get("/state", handleState(m))
	r.Get("/graph.dot", handleDOT(m))
	r.Get("/graph.mmd", handleMermaid(m))
	return r
}

func handleState(m Machine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]string{"state": m.CurrentLabel()})
	}
}

func handleDOT(m Machine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
		_, _ = io.WriteString(w, m.DOT())
	}
}

func handleMermaid(m Machine) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, m.Mermaid())
	}
}
