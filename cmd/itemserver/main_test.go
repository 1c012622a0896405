package main

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	"github.com/isparth/Distributed-Systems/items-api/internal/httpapi"
	"github.com/isparth/Distributed-Systems/items-api/internal/kv"
	"github.com/isparth/Distributed-Systems/items-api/internal/logging"
)

func TestBenchCmd(t *testing.T) {
	logging.SetOutput(io.Discard)
	color.NoColor = true
	ts := httptest.NewServer(httpapi.NewRouter(kv.NewSeededStore()))
	defer ts.Close()

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"bench", "--url", ts.URL, "--iterations", "5", "--concurrency", "2", "--threshold", "5s"})

	require.NoError(t, root.ExecuteContext(context.Background()))
	require.Contains(t, out.String(), "Show_item_one")
	require.Contains(t, out.String(), "Create_item_error")
}

func TestBenchCmd_FailsAgainstDeadServer(t *testing.T) {
	logging.SetOutput(io.Discard)
	ts := httptest.NewServer(nil)
	url := ts.URL
	ts.Close()

	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetArgs([]string{"bench", "--url", url, "--iterations", "1"})

	err := root.ExecuteContext(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed")
}

func TestServeCmd_RejectsArgs(t *testing.T) {
	root := newRootCmd()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"serve", "extra"})
	require.Error(t, root.ExecuteContext(context.Background()))
}
