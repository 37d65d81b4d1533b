//go:build riscv64

package rapidutf

func archImplementations() []Implementation {
	return []Implementation{
		newBlockImplementation("rvv", "RISC-V Vector Extension", ISARVV, 32),
	}
}
