package httpserver

import (
	"net/http"
	"time"
)

// New builds the HTTP server. Request and response bodies here are small JSON
// documents, so reads are kept tight; the write timeout leaves headroom for a
// bcrypt verify on a loaded box.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
