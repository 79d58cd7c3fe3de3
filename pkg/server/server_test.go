package server_test

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"tracd.io/tracd/pkg/server"
	"tracd.io/tracd/private/testcontext"
)

func TestServerRequiresListener(t *testing.T) {
	_, err := server.New(zaptest.NewLogger(t), server.Config{})
	require.Error(t, err)
}

func TestServerRunAndShutdown(t *testing.T) {
	ctx := testcontext.New(t)
	log := zaptest.NewLogger(t)

	srv, err := server.New(log, server.Config{GrpcAddress: "127.0.0.1:0"})
	require.NoError(t, err)
	require.NotNil(t, srv.Addr())
	require.Nil(t, srv.HTTPAddr())

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	ctx.Go(func() error {
		done <- srv.Run(runCtx)
		return nil
	})

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerHTTPOnly(t *testing.T) {
	ctx := testcontext.New(t)
	log := zaptest.NewLogger(t)

	srv, err := server.New(log, server.Config{HttpAddress: "127.0.0.1:0"})
	require.NoError(t, err)
	require.Nil(t, srv.Addr())
	require.NotNil(t, srv.HTTPAddr())

	srv.SetHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	ctx.Go(func() error {
		done <- srv.Run(runCtx)
		return nil
	})

	url := fmt.Sprintf("http://%s/ping", srv.HTTPAddr())
	var resp *http.Response
	require.Eventually(t, func() bool {
		var err error
		resp, err = http.Get(url)
		return err == nil
	}, 10*time.Second, 50*time.Millisecond)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.NoError(t, resp.Body.Close())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServerHandlerRequired(t *testing.T) {
	ctx := testcontext.New(t)
	log := zaptest.NewLogger(t)

	srv, err := server.New(log, server.Config{HttpAddress: "127.0.0.1:0"})
	require.NoError(t, err)
	defer func() { _ = srv.Close() }()

	require.Error(t, srv.Run(ctx))
}
