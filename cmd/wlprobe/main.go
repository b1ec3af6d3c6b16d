package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/elliotcourant/wlclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type connectFlags struct {
	socket  string
	label   string
	timeout time.Duration
}

func (f *connectFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&f.socket, "socket", "", "Compositor socket (default from XDG_RUNTIME_DIR and WAYLAND_DISPLAY)")
	cmd.PersistentFlags().StringVar(&f.label, "label", "", "Connection label used in logs and metrics")
	cmd.PersistentFlags().DurationVar(&f.timeout, "timeout", 5*time.Second, "Read timeout, 0 waits forever")
}

func (f *connectFlags) connect(ctx context.Context, registry prometheus.Registerer) (*wlclient.Client, error) {
	return wlclient.Connect(ctx, wlclient.Options{
		SocketPath:  f.socket,
		Label:       f.label,
		ReadTimeout: f.timeout,
		Registerer:  registry,
	})
}

func main() {
	flags := &connectFlags{}

	rootCmd := &cobra.Command{
		Use:   "wlprobe",
		Short: "Inspect a Wayland compositor",
		Long: `wlprobe connects to a Wayland compositor over its Unix socket and
walks the registry.

Examples:
  wlprobe globals
  wlprobe bind wl_compositor --events 10
  wlprobe --socket /run/user/1000/wayland-1 globals`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags.register(rootCmd)

	rootCmd.AddCommand(
		globalsCmd(flags),
		bindCmd(flags),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
