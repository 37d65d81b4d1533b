package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnightingale/rapidutf"
)

func newDetectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detect [file]",
		Args:  cobra.MaximumNArgs(1),
		Short: "Guess the encoding of a file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %s\n", name, rapidutf.AutodetectEncoding(data))
			if bom := rapidutf.CheckBOM(data); bom != rapidutf.Unspecified {
				fmt.Fprintf(out, "  bom: %s\n", bom)
			}
			fmt.Fprintf(out, "  valid as: %s\n", rapidutf.DetectEncodings(data))
			return nil
		},
	}
}
