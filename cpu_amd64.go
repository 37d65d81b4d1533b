//go:build amd64

package rapidutf

import "golang.org/x/sys/cpu"

func detectSupportedArchitectures() InstructionSet {
	var s InstructionSet
	flags := []struct {
		has bool
		isa InstructionSet
	}{
		{cpu.X86.HasSSE42, ISASSE42},
		{cpu.X86.HasPCLMULQDQ, ISAPCLMULQDQ},
		{cpu.X86.HasAVX, ISAAVX},
		{cpu.X86.HasAVX2, ISAAVX2},
		{cpu.X86.HasBMI1, ISABMI1},
		{cpu.X86.HasBMI2, ISABMI2},
		{cpu.X86.HasAVX512F, ISAAVX512F},
		{cpu.X86.HasAVX512DQ, ISAAVX512DQ},
		{cpu.X86.HasAVX512CD, ISAAVX512CD},
		{cpu.X86.HasAVX512BW, ISAAVX512BW},
		{cpu.X86.HasAVX512VL, ISAAVX512VL},
		{cpu.X86.HasAVX512VBMI2, ISAAVX512VBMI2},
		{cpu.X86.HasAVX512VPOPCNTDQ, ISAAVX512VPOPCNTDQ},
	}
	for _, f := range flags {
		if f.has {
			s |= f.isa
		}
	}
	return s
}
