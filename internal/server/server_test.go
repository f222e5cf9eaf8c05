package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"jewelry-storefront/internal/handler"
	mw "jewelry-storefront/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer() *Server {
	// handlers are never invoked here, routing only needs their method sets
	return NewServer(
		mw.NewSessionGate(nil, nil),
		(*handler.CatalogHandler)(nil),
		(*handler.CartHandler)(nil),
		(*handler.OrderHandler)(nil),
		(*handler.SessionHandler)(nil),
		(*handler.AdminHandler)(nil),
		(*handler.MediaHandler)(nil),
	)
}

func TestShutdown_StopsRunningServer(t *testing.T) {
	s := testServer()
	s.echo.HideBanner = true

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Start("127.0.0.1:0")
	}()

	// wait for the listener to come up
	require.Eventually(t, func() bool {
		return s.echo.ListenerAddr() != nil
	}, 2*time.Second, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Shutdown(ctx))

	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, http.ErrServerClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after shutdown")
	}
}
