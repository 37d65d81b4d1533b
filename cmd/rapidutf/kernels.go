package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mnightingale/rapidutf"
)

func newKernelsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kernels",
		Args:  cobra.NoArgs,
		Short: "List the compiled-in implementations",
		Long:  "List the compiled-in implementations in priority order and mark the active one.",
		RunE: func(cmd *cobra.Command, args []string) error {
			active := rapidutf.ActiveKernel()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSUPPORTED\tREQUIRES\tDESCRIPTION")
			for _, impl := range rapidutf.AvailableImplementations() {
				name := impl.Name()
				if name == active {
					name += " *"
				}
				fmt.Fprintf(w, "%s\t%t\t%s\t%s\n", name, impl.SupportedByRuntimeSystem(), impl.RequiredInstructionSets(), impl.Description())
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "detected: %s\n", rapidutf.DetectSupportedArchitectures())
			return nil
		},
	}
}
