package rapidutf

import (
	"fmt"
	"os"
	"slices"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// ForceImplementationEnvVar names the environment variable that selects a
// kernel by name, bypassing detection. It is read once, the first time the
// active kernel is needed. A name that is unknown, or names a kernel the
// processor cannot run, selects a kernel that rejects all input.
const ForceImplementationEnvVar = "RAPIDUTF_FORCE_IMPLEMENTATION"

var (
	registry     []Implementation
	registryOnce sync.Once
)

// implementations returns the compiled-in kernels, fastest first, ending
// with the fallback.
func implementations() []Implementation {
	registryOnce.Do(func() {
		registry = append(archImplementations(), newFallbackImplementation())
	})
	return registry
}

// AvailableImplementations returns every compiled-in kernel, fastest first,
// whether or not the running processor supports it.
func AvailableImplementations() []Implementation {
	return slices.Clone(implementations())
}

// LookupImplementation returns the compiled-in kernel called name.
func LookupImplementation(name string) (Implementation, error) {
	for _, impl := range implementations() {
		if impl.Name() == name {
			return impl, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, name)
}

// DetectBestSupported returns the first kernel in priority order that the
// running processor supports. The fallback is always supported.
func DetectBestSupported() Implementation {
	impls := implementations()
	for _, impl := range impls {
		if impl.SupportedByRuntimeSystem() {
			return impl
		}
	}
	return impls[len(impls)-1]
}

type activeSlot struct {
	impl Implementation
}

var (
	active     atomic.Pointer[activeSlot]
	activeOnce sync.Once
)

// GetActiveImplementation returns the kernel used by the package-level
// functions. The first call resolves it from ForceImplementationEnvVar or by
// detection unless SetActiveImplementation already chose one.
func GetActiveImplementation() Implementation {
	if s := active.Load(); s != nil {
		return s.impl
	}
	activeOnce.Do(func() {
		active.CompareAndSwap(nil, &activeSlot{resolveImplementation()})
	})
	return active.Load().impl
}

// SetActiveImplementation replaces the kernel used by the package-level
// functions. It may be called concurrently with them; calls already running
// finish on the previous kernel.
func SetActiveImplementation(impl Implementation) {
	if impl == nil {
		impl = DetectBestSupported()
	}
	Logger().Info("active implementation set",
		zap.String("name", impl.Name()),
		zap.Bool("supported", impl.SupportedByRuntimeSystem()))
	active.Store(&activeSlot{impl})
}

// SetActiveImplementationByName is SetActiveImplementation for a kernel
// looked up by name. It refuses kernels the processor cannot run.
func SetActiveImplementationByName(name string) error {
	impl, err := LookupImplementation(name)
	if err != nil {
		return err
	}
	if !impl.SupportedByRuntimeSystem() {
		return fmt.Errorf("%w: %s requires %s", ErrUnsupportedImplementation, name, impl.RequiredInstructionSets())
	}
	SetActiveImplementation(impl)
	return nil
}

func resolveImplementation() Implementation {
	log := Logger()
	detected := DetectSupportedArchitectures()
	if name := os.Getenv(ForceImplementationEnvVar); name != "" {
		impl, err := LookupImplementation(name)
		if err != nil {
			log.Warn("forced implementation is not compiled in",
				zap.String("name", name),
				zap.Error(err))
			return unsupportedSingleton
		}
		if !impl.SupportedByRuntimeSystem() {
			log.Warn("forced implementation is not supported by this CPU",
				zap.String("name", name),
				zap.Stringer("detected", detected),
				zap.Stringer("required", impl.RequiredInstructionSets()))
			return unsupportedSingleton
		}
		return impl
	}
	impl := DetectBestSupported()
	log.Debug("implementation selected",
		zap.String("name", impl.Name()),
		zap.Stringer("detected", detected),
		zap.Stringer("required", impl.RequiredInstructionSets()))
	return impl
}
