package rapidutf

import (
	"fmt"
)

var version = 0x070200

// Version returns the version of the rapidutf library.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", version>>16&0xff, version>>8&0xff, version&0xff)
}

// ActiveKernel returns the name of the implementation used by the
// package-level functions.
func ActiveKernel() string {
	return GetActiveImplementation().Name()
}
