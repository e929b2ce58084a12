package api

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(availability *AvailabilityHandler) *mux.Router {
	r := mux.NewRouter()

	for _, path := range []string{"/api", "/api/availability"} {
		r.HandleFunc(path, availability.FindBestAvailability).Methods(http.MethodPost)
		r.HandleFunc(path, Preflight).Methods(http.MethodOptions)
	}
	r.HandleFunc("/health", Health).Methods(http.MethodGet)

	r.MethodNotAllowedHandler = http.HandlerFunc(MethodNotAllowed)
	return r
}
