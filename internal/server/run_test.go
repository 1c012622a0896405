package server

import (
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/isparth/Distributed-Systems/items-api/internal/httpapi"
	"github.com/isparth/Distributed-Systems/items-api/internal/kv"
	"github.com/isparth/Distributed-Systems/items-api/internal/logging"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	logging.SetOutput(io.Discard)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, ln, httpapi.NewRouter(kv.NewSeededStore()), DefaultConfig())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/items/2")
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.Equal(t, "Queen", body["item"])

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = http.Get("http://" + ln.Addr().String() + "/")
	require.Error(t, err)
}

func TestRun_ListenError(t *testing.T) {
	logging.SetOutput(io.Discard)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	cfg := DefaultConfig()
	cfg.Addr = ln.Addr().String()
	err = Run(context.Background(), cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "listen on")
}
