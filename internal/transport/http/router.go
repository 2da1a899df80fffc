package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter configures HTTP routes and the metrics endpoint.
func NewRouter(handler *Handler, gatherer prometheus.Gatherer) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/transcribe", handler.Transcribe).Methods("POST")
	r.HandleFunc("/status/{jobID}", handler.Status).Methods("GET")
	r.HandleFunc("/healthz", handler.Healthz).Methods("GET")
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods("GET")
	return r
}
