//go:build loong64

package rapidutf

import "golang.org/x/sys/cpu"

func detectSupportedArchitectures() InstructionSet {
	var s InstructionSet
	if cpu.Loong64.HasLSX {
		s |= ISALSX
	}
	if cpu.Loong64.HasLASX {
		s |= ISALASX
	}
	return s
}
