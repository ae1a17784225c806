package main

import (
	"errors"
	"net"
	"net/http"
	"testing"
	"time"
)

func TestShutdownStatusServerStopsServing(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	srv := &http.Server{Handler: http.NotFoundHandler()}
	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	shutdownStatusServer(srv)

	select {
	case err := <-served:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("Serve returned %v, want ErrServerClosed", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server still serving after shutdown")
	}
}

func TestShutdownStatusServerNil(t *testing.T) {
	shutdownStatusServer(nil)
}
