package rapidutf

import (
	"strings"

	"golang.org/x/sys/cpu"
)

// InstructionSet is a bitmask of processor extensions a kernel may rely on.
type InstructionSet uint32

// ISADefault is the empty set: no extension beyond the GOARCH baseline.
const ISADefault InstructionSet = 0

const (
	ISANEON InstructionSet = 1 << iota
	ISAAVX2
	ISASSE42
	ISAPCLMULQDQ
	ISABMI1
	ISABMI2
	ISAAltiVec
	ISAAVX512F
	ISAAVX512DQ
	ISAAVX512CD
	ISAAVX512BW
	ISAAVX512VL
	ISAAVX512VBMI2
	ISAAVX512VPOPCNTDQ
	ISARVV
	ISAZVBB
	ISAAVX
	ISALSX
	ISALASX
	ISASVE
	ISAPOWER9
)

var isaNames = []struct {
	isa  InstructionSet
	name string
}{
	{ISANEON, "neon"},
	{ISAAVX2, "avx2"},
	{ISASSE42, "sse42"},
	{ISAPCLMULQDQ, "pclmulqdq"},
	{ISABMI1, "bmi1"},
	{ISABMI2, "bmi2"},
	{ISAAltiVec, "altivec"},
	{ISAAVX512F, "avx512f"},
	{ISAAVX512DQ, "avx512dq"},
	{ISAAVX512CD, "avx512cd"},
	{ISAAVX512BW, "avx512bw"},
	{ISAAVX512VL, "avx512vl"},
	{ISAAVX512VBMI2, "avx512vbmi2"},
	{ISAAVX512VPOPCNTDQ, "avx512vpopcntdq"},
	{ISARVV, "rvv"},
	{ISAZVBB, "zvbb"},
	{ISAAVX, "avx"},
	{ISALSX, "lsx"},
	{ISALASX, "lasx"},
	{ISASVE, "sve"},
	{ISAPOWER9, "power9"},
}

// String lists the extensions in the set, e.g. "avx2+bmi1+bmi2".
func (s InstructionSet) String() string {
	if s == ISADefault {
		return "default"
	}
	var names []string
	for _, n := range isaNames {
		if s&n.isa != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}

// Contains reports whether every extension in required is present in s.
func (s InstructionSet) Contains(required InstructionSet) bool {
	return s&required == required
}

// DetectSupportedArchitectures returns the extensions available on the
// running processor. Platforms without detection support return ISADefault,
// which only the portable kernel accepts.
func DetectSupportedArchitectures() InstructionSet {
	return supportedArchitectures
}

// x/sys/cpu fills its feature flags in its own init, which runs first.
var supportedArchitectures = detectSupportedArchitectures()

// nativeBigEndian is true when []uint16 elements are stored big-endian.
const nativeBigEndian = cpu.IsBigEndian

// isNative reports whether code units in byte order e can be used without swapping.
func isNative(e Endianness) bool {
	return (e == BigEndian) == nativeBigEndian
}
