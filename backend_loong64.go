//go:build loong64

package rapidutf

func archImplementations() []Implementation {
	return []Implementation{
		newBlockImplementation("lasx", "LoongArch ASX", ISALASX, 32),
		newBlockImplementation("lsx", "LoongArch SX", ISALSX, 16),
	}
}
