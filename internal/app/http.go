package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"authd/internal/auth/api"
)

func registerHTTP(mux *http.ServeMux, auth *api.Handler) {
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	// All state is in-process, so readiness follows liveness.
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready\n"))
	})

	mux.Handle("/metrics", promhttp.Handler())

	if auth != nil {
		auth.Register(mux)
	}
}
