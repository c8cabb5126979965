package controller

import (
	"net/http"
	"net/http/pprof"

	"github.com/go-chi/chi/v5"
)

// PprofPrefix is where Pprof expects to be mounted. pprof.Index resolves
// named profiles relative to it.
const PprofPrefix = "/debug/pprof"

// Pprof returns a router exposing net/http/pprof handlers. Mount it at
// PprofPrefix on a chi router.
func Pprof() http.Handler {
	r := chi.NewRouter()

	r.HandleFunc("/", pprof.Index)
	r.HandleFunc("/cmdline", pprof.Cmdline)
	r.HandleFunc("/profile", pprof.Profile)
	r.HandleFunc("/symbol", pprof.Symbol)
	r.HandleFunc("/trace", pprof.Trace)
	// heap, goroutine, allocs and the other named profiles
	r.HandleFunc("/{profile}", pprof.Index)

	return r
}
