package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mnightingale/rapidutf/stream"
)

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "validate [file]",
		Args:    cobra.MaximumNArgs(1),
		Short:   "Check that a file is valid UTF-8",
		Long:    "Check that a file (or standard input) is valid UTF-8. The input is streamed; the offset of the first error is reported.",
		Example: "rapidutf validate notes.txt",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, name, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer r.Close()

			v := stream.NewValidatingReader(r)
			if _, err := io.Copy(io.Discard, v); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid UTF-8, %d bytes\n", name, v.Offset())
			return nil
		},
	}
}
