//go:build ppc64 || ppc64le

package rapidutf

import "golang.org/x/sys/cpu"

func detectSupportedArchitectures() InstructionSet {
	var s InstructionSet
	if cpu.PPC64.IsPOWER8 {
		s |= ISAAltiVec
	}
	if cpu.PPC64.IsPOWER9 {
		s |= ISAPOWER9
	}
	return s
}
