package main

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestRunServerStopsOnContextCancel(t *testing.T) {
	srv := &http.Server{
		Addr: "127.0.0.1:0",
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- runServer(ctx, srv, 2*time.Second, zerolog.Nop())
	}()

	// Give the listener a moment to bind before signalling shutdown.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down in time")
	}
}

func TestRunServerReturnsListenError(t *testing.T) {
	srv := &http.Server{Addr: "256.256.256.256:0"}
	err := runServer(context.Background(), srv, time.Second, zerolog.Nop())
	if err == nil {
		t.Fatal("expected listen error")
	}
}
