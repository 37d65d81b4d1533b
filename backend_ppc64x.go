//go:build ppc64 || ppc64le

package rapidutf

func archImplementations() []Implementation {
	return []Implementation{
		newBlockImplementation("ppc64", "PowerPC AltiVec (POWER8+)", ISAAltiVec, 16),
	}
}
