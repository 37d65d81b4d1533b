//go:build amd64

package rapidutf

func archImplementations() []Implementation {
	haswell := newBlockImplementation("haswell", "Intel/AMD AVX2", ISAAVX2|ISAPCLMULQDQ|ISABMI1|ISABMI2, 32)
	if useAVX2ASCII {
		haswell.asciiPrefix = asciiPrefixAVX2
		haswell.utf8Prefix = utf8PrefixAVX2
		haswell.indexByte = indexByteAVX2
	}
	westmere := newBlockImplementation("westmere", "Intel/AMD SSE4.2", ISASSE42|ISAPCLMULQDQ, 16)
	if useSIMDASCII {
		westmere.asciiPrefix = asciiPrefixAVX
	}
	return []Implementation{haswell, westmere}
}
