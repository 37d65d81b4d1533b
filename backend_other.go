//go:build !(amd64 || arm64 || ppc64 || ppc64le || riscv64 || loong64)

package rapidutf

// No vector kernels on this platform.
func archImplementations() []Implementation { return nil }
