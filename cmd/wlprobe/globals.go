package main

import (
	"fmt"
	"io"

	"github.com/elliotcourant/wlclient"
	"github.com/spf13/cobra"
)

func globalsCmd(flags *connectFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "globals",
		Short: "List the globals the compositor advertises",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := flags.connect(cmd.Context(), nil)
			if err != nil {
				return err
			}
			defer c.Close()

			globals, err := c.Globals()
			if err != nil {
				return err
			}
			printGlobals(cmd.OutOrStdout(), globals)
			return nil
		},
	}
}

func printGlobals(w io.Writer, globals wlclient.Globals) {
	for _, name := range globals.Names() {
		desc := globals[name]
		fmt.Fprintf(w, "%4d  %-40s v%d\n", desc.ObjectName, name, desc.Version)
	}
}
