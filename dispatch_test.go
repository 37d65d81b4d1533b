package rapidutf

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })
	return logs
}

func TestAvailableImplementations(t *testing.T) {
	impls := AvailableImplementations()
	require.NotEmpty(t, impls)
	last := impls[len(impls)-1]
	require.Equal(t, "fallback", last.Name())
	require.Equal(t, ISADefault, last.RequiredInstructionSets())
	require.True(t, last.SupportedByRuntimeSystem())

	names := map[string]bool{}
	for _, impl := range impls {
		require.False(t, names[impl.Name()], "duplicate %s", impl.Name())
		names[impl.Name()] = true
		require.NotEmpty(t, impl.Description())
	}

	// callers cannot reorder the registry
	impls[0] = nil
	require.NotNil(t, AvailableImplementations()[0])
}

func TestDetectBestSupported(t *testing.T) {
	best := DetectBestSupported()
	require.True(t, best.SupportedByRuntimeSystem())
	require.True(t, DetectSupportedArchitectures().Contains(best.RequiredInstructionSets()))

	for _, impl := range AvailableImplementations() {
		if impl.SupportedByRuntimeSystem() {
			require.Equal(t, impl.Name(), best.Name())
			break
		}
	}
}

func TestLookupImplementation(t *testing.T) {
	impl, err := LookupImplementation("fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback", impl.Name())

	_, err = LookupImplementation("pentium")
	require.ErrorIs(t, err, ErrUnknownImplementation)
}

func TestGetActiveImplementationDetects(t *testing.T) {
	resetActive(t)
	t.Setenv(ForceImplementationEnvVar, "")
	logs := observeLogs(t)

	require.Equal(t, DetectBestSupported().Name(), GetActiveImplementation().Name())
	require.Equal(t, GetActiveImplementation().Name(), ActiveKernel())
	require.Equal(t, 1, logs.FilterMessage("implementation selected").Len())

	// resolved once
	GetActiveImplementation()
	require.Equal(t, 1, logs.FilterMessage("implementation selected").Len())
}

func TestForceImplementation(t *testing.T) {
	resetActive(t)
	t.Setenv(ForceImplementationEnvVar, "fallback")

	require.Equal(t, "fallback", GetActiveImplementation().Name())
	require.True(t, ValidateUTF8([]byte("h\xc3\xa9")))
}

func TestForceUnknownImplementation(t *testing.T) {
	resetActive(t)
	t.Setenv(ForceImplementationEnvVar, "no-such-kernel")
	logs := observeLogs(t)

	impl := GetActiveImplementation()
	require.Equal(t, "unsupported", impl.Name())
	require.False(t, impl.SupportedByRuntimeSystem())

	warned := logs.FilterMessage("forced implementation is not compiled in").All()
	require.Len(t, warned, 1)
	require.Equal(t, zapcore.WarnLevel, warned[0].Level)
	require.Equal(t, "rapidutf", warned[0].LoggerName)
	require.Equal(t, "no-such-kernel", warned[0].ContextMap()["name"])

	// fails closed
	require.False(t, ValidateUTF8([]byte("a")))
	require.Equal(t, Result{Other, 0}, ValidateUTF8WithErrors([]byte("a")))
	require.False(t, ValidateASCII([]byte("a")))
	require.Zero(t, ConvertUTF8ToUTF16LE([]byte("a"), make([]uint16, 1)))
	require.Zero(t, UTF16LengthFromUTF8([]byte("a")))
	require.Equal(t, Unspecified, AutodetectEncoding([]byte("a")))
	require.Equal(t, Result{Other, 0}, Base64ToBinary([]byte("AAAA"), make([]byte, 3), Base64Default, Loose))
	require.Equal(t, -1, Find([]byte("a"), 'a'))
	_, err := UTF8ToUTF16LE([]byte("a"))
	require.ErrorIs(t, err, Other)
}

// registerMissingKernel adds a kernel needing an extension this processor
// lacks, just ahead of the fallback.
func registerMissingKernel(t *testing.T) string {
	t.Helper()
	detected := DetectSupportedArchitectures()
	var missing InstructionSet
	for _, n := range isaNames {
		if !detected.Contains(n.isa) {
			missing = n.isa
			break
		}
	}
	require.NotEqual(t, ISADefault, missing)

	impls := implementations()
	saved := registry
	kernel := newBlockImplementation("missing-"+missing.String(), "needs "+missing.String(), missing, 16)
	registry = append(slices.Clone(impls[:len(impls)-1]), kernel, impls[len(impls)-1])
	t.Cleanup(func() { registry = saved })
	return kernel.Name()
}

func TestForceUnsupportedImplementation(t *testing.T) {
	name := registerMissingKernel(t)
	resetActive(t)
	t.Setenv(ForceImplementationEnvVar, name)
	logs := observeLogs(t)

	impl := GetActiveImplementation()
	require.Equal(t, "unsupported", impl.Name())
	require.False(t, ValidateUTF8([]byte("a")))
	require.Zero(t, ConvertLatin1ToUTF8([]byte("a"), make([]byte, 2)))

	warned := logs.FilterMessage("forced implementation is not supported by this CPU").All()
	require.Len(t, warned, 1)
	require.Equal(t, name, warned[0].ContextMap()["name"])

	// detection never picks it either
	require.NotEqual(t, name, DetectBestSupported().Name())
	require.ErrorIs(t, SetActiveImplementationByName(name), ErrUnsupportedImplementation)
}

func TestSetActiveImplementationWinsOverEnv(t *testing.T) {
	resetActive(t)
	t.Setenv(ForceImplementationEnvVar, "no-such-kernel")

	impl, err := LookupImplementation("fallback")
	require.NoError(t, err)
	SetActiveImplementation(impl)
	require.Equal(t, "fallback", GetActiveImplementation().Name())

	SetActiveImplementation(nil)
	require.Equal(t, DetectBestSupported().Name(), GetActiveImplementation().Name())
}

func TestSetActiveImplementationByName(t *testing.T) {
	resetActive(t)
	logs := observeLogs(t)

	require.NoError(t, SetActiveImplementationByName("fallback"))
	require.Equal(t, "fallback", ActiveKernel())
	require.Equal(t, 1, logs.FilterMessage("active implementation set").Len())

	require.ErrorIs(t, SetActiveImplementationByName("no-such-kernel"), ErrUnknownImplementation)

	for _, impl := range AvailableImplementations() {
		if !impl.SupportedByRuntimeSystem() {
			require.ErrorIs(t, SetActiveImplementationByName(impl.Name()), ErrUnsupportedImplementation)
		}
	}
	require.Equal(t, "fallback", ActiveKernel())
}

func TestActiveImplementationConcurrent(t *testing.T) {
	resetActive(t)
	t.Setenv(ForceImplementationEnvVar, "")

	text := randomText(seededRand(), 10_000, 70)
	impls := AvailableImplementations()

	var g errgroup.Group
	for i := range 8 {
		g.Go(func() error {
			for range 200 {
				if !ValidateUTF8(text) {
					return Other
				}
				if n := UTF16LengthFromUTF8(text); n == 0 {
					return Other
				}
			}
			return nil
		})
		g.Go(func() error {
			for j := range 50 {
				impl := impls[(i+j)%len(impls)]
				if impl.SupportedByRuntimeSystem() {
					SetActiveImplementation(impl)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}

func TestVersion(t *testing.T) {
	require.Equal(t, "7.2.0", Version())
}
