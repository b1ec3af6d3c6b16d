package main

import (
	"fmt"
	"io"
	"net"
	"sort"

	"github.com/elliotcourant/wlclient"
	"github.com/elliotcourant/wlclient/protocol"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func bindCmd(flags *connectFlags) *cobra.Command {
	var (
		events      int
		showMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "bind [interface]",
		Short: "Bind a global and print the events it receives",
		Long: `Bind a global advertised by the registry, then print every event the
compositor sends until the limit is reached or the read times out.

Examples:
  wlprobe bind
  wlprobe bind wl_shm --events 5`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iface := protocol.CompositorInterface
			if len(args) > 0 {
				iface = args[0]
			}

			registry := prometheus.NewRegistry()
			c, err := flags.connect(cmd.Context(), registry)
			if err != nil {
				return err
			}
			defer c.Close()

			out := cmd.OutOrStdout()
			if err := runBind(out, c, iface, events); err != nil {
				return err
			}
			if showMetrics {
				return printMetrics(out, registry)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&events, "events", "n", 0, "Stop after this many events, 0 reads until timeout")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print connection counters when done")

	return cmd
}

func runBind(w io.Writer, c *wlclient.Client, iface string, events int) error {
	globals, err := c.Globals()
	if err != nil {
		return err
	}
	id, err := c.Bind(globals, iface)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "bound %s v%d as object %s\n", iface, globals[iface].Version, id)

	for i := 0; events <= 0 || i < events; i++ {
		event, err := c.NextEvent()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				return nil
			}
			if c.Err() != nil {
				return err
			}
			fmt.Fprintf(w, "! %v\n", err)
			continue
		}
		fmt.Fprintf(w, "%s\n", describe(event))
	}
	return nil
}

func describe(event protocol.Event) string {
	switch e := event.(type) {
	case *protocol.RegistryGlobalEvent:
		return fmt.Sprintf("wl_registry.global %d %s v%d", e.Name, e.Interface, e.Version)
	case *protocol.RegistryGlobalRemoveEvent:
		return fmt.Sprintf("wl_registry.global_remove %d", e.Name)
	case *protocol.DisplayDeleteIDEvent:
		return fmt.Sprintf("wl_display.delete_id %s", e.ID)
	case *protocol.CallbackDoneEvent:
		return fmt.Sprintf("wl_callback@%s.done %d", e.Callback, e.CallbackData)
	case *protocol.UnknownEvent:
		iface := e.Interface
		if iface == "" {
			iface = "?"
		}
		return fmt.Sprintf("%s@%s opcode %d (%d bytes)", iface, e.Header.ObjectID, e.Header.Opcode, e.Header.Size)
	default:
		return fmt.Sprintf("%T", event)
	}
}

func printMetrics(w io.Writer, registry *prometheus.Registry) error {
	families, err := registry.Gather()
	if err != nil {
		return err
	}
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			labels := ""
			for _, pair := range metric.GetLabel() {
				if pair.GetName() == "interface" {
					labels = "{" + pair.GetValue() + "}"
				}
			}
			fmt.Fprintf(w, "%s%s %v\n", family.GetName(), labels, metric.GetCounter().GetValue())
		}
	}
	return nil
}
