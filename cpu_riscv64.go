//go:build riscv64

package rapidutf

import "golang.org/x/sys/cpu"

func detectSupportedArchitectures() InstructionSet {
	var s InstructionSet
	if cpu.RISCV64.HasV {
		s |= ISARVV
	}
	return s
}
