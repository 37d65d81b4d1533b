//go:build arm64

package rapidutf

// ARM64 always has NEON (ASIMD).
func archImplementations() []Implementation {
	return []Implementation{
		newBlockImplementation("arm64", "ARM NEON", ISANEON, 16),
	}
}
