//go:build !(amd64 || arm64 || ppc64 || ppc64le || riscv64 || loong64)

package rapidutf

func detectSupportedArchitectures() InstructionSet {
	return ISADefault
}
