package connection

import (
	"context"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
)

type recordingCloser struct {
	closed bool
}

func (r *recordingCloser) Close() error {
	r.closed = true
	return nil
}

func TestGracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := &http.Server{Handler: http.NewServeMux()}
	go srv.Serve(ln)

	store := &recordingCloser{}
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	go func() {
		gracefulShutdown(srv, store, zap.NewNop(), sigChan)
		close(done)
	}()

	sigChan <- os.Interrupt

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("shutdown did not complete")
	}
	if !store.closed {
		t.Error("store was not closed on shutdown")
	}

	// the listener must be down after Shutdown returns
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	var d net.Dialer
	if conn, err := d.DialContext(ctx, "tcp", ln.Addr().String()); err == nil {
		conn.Close()
		t.Error("server still accepting connections after shutdown")
	}
}
