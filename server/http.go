package server

import (
	"fmt"
	"net"
	"net/http"
)

// StartHTTPServer begins serving in the background and returns the server so
// the caller can drive graceful shutdown.
func StartHTTPServer(host string, port int, handler http.Handler, onErr func(error)) *http.Server {
	addr := net.JoinHostPort(host, fmt.Sprintf("%d", port))
	srv := &http.Server{Addr: addr, Handler: handler}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			onErr(err)
		}
	}()
	return srv
}
