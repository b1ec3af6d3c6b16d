package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/elliotcourant/wlclient"
	"github.com/elliotcourant/wlclient/internal/testutils"
	"github.com/elliotcourant/wlclient/protocol"
	"github.com/elliotcourant/wlclient/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintGlobals(t *testing.T) {
	out := &bytes.Buffer{}
	printGlobals(out, wlclient.Globals{
		"wl_shm":        {ObjectName: 2, Version: 1},
		"wl_compositor": {ObjectName: 1, Version: 4},
	})
	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "wl_compositor")
	assert.Contains(t, string(lines[1]), "wl_shm")
}

func TestRunBind(t *testing.T) {
	client, server, cleanup := testutils.NewSocketPair(t)
	defer cleanup()

	registry := prometheus.NewRegistry()
	c := wlclient.NewClient(wire.NewConn(client), wlclient.Options{
		Label:       "probe",
		ReadTimeout: 50 * time.Millisecond,
		Registerer:  registry,
	})
	comp := testutils.NewCompositor(t, server)

	comp.Global(12, protocol.CompositorInterface, 4)
	comp.Done(wire.CallbackID, 1)
	comp.Send(wire.DisplayID, 1, func(b *wire.Builder) {
		b.Object(wire.CallbackID)
	})
	comp.Send(wire.FirstAvailableID, 5, nil)

	out := &bytes.Buffer{}
	require.NoError(t, runBind(out, c, protocol.CompositorInterface, 0))
	assert.Equal(t, "bound wl_compositor v4 as object 8\n"+
		"wl_display.delete_id 3\n"+
		"wl_compositor@8 opcode 5 (8 bytes)\n", out.String())

	metrics := &bytes.Buffer{}
	require.NoError(t, printMetrics(metrics, registry))
	assert.Contains(t, metrics.String(), "wlclient_unknown_events_total{wl_compositor} 1")
}

func TestRunBind_EventLimit(t *testing.T) {
	client, server, cleanup := testutils.NewSocketPair(t)
	defer cleanup()

	c := wlclient.NewClient(wire.NewConn(client), wlclient.Options{})
	comp := testutils.NewCompositor(t, server)

	comp.Global(1, "wl_shm", 1)
	comp.Done(wire.CallbackID, 1)
	comp.Global(2, "wl_seat", 7)
	comp.Global(3, "wl_output", 4)

	out := &bytes.Buffer{}
	require.NoError(t, runBind(out, c, "wl_shm", 1))
	assert.Equal(t, "bound wl_shm v1 as object 8\n"+
		"wl_registry.global 2 wl_seat v7\n", out.String())
}

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--short"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, "dev\n", out.String())
}
