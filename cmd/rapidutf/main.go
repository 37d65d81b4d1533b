// Command rapidutf validates, detects and transcodes text files and encodes
// and decodes base64 using the rapidutf kernels.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
