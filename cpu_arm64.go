//go:build arm64

package rapidutf

import "golang.org/x/sys/cpu"

// ARM64 always has NEON (ASIMD); the flag is still read so that a kernel
// forced on a crippled emulator is refused rather than faulting.
func detectSupportedArchitectures() InstructionSet {
	s := ISANEON
	if !cpu.ARM64.HasASIMD {
		s = ISADefault
	}
	if cpu.ARM64.HasSVE {
		s |= ISASVE
	}
	return s
}
