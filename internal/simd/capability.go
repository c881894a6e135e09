package simd

import (
	"os"
	"strings"
)

// ISA is a CPU feature level. The kernels are pure Go, so the level only
// decides how many independent accumulators they unroll into.
type ISA uint8

const (
	Generic ISA = iota
	NEON
	SVE2
	AVX2
	AVX512
)

var isaNames = [...]string{
	Generic: "generic",
	NEON:    "neon",
	SVE2:    "sve2",
	AVX2:    "avx2",
	AVX512:  "avx512",
}

func (i ISA) String() string {
	if int(i) < len(isaNames) {
		return isaNames[i]
	}
	return "unknown"
}

// ParseISA parses a level name as accepted by LLOYD_SIMD.
func ParseISA(s string) (ISA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range isaNames {
		if s == name {
			return ISA(i), true
		}
	}
	return Generic, false
}

// Unroll returns the accumulator count of the squared-L2 kernel bound for i.
func (i ISA) Unroll() int {
	switch i {
	case AVX512, SVE2:
		return 8
	case AVX2, NEON:
		return 4
	default:
		return 1
	}
}

// cpuFeatures is filled by the per-architecture init before detect runs.
type cpuFeatures struct {
	neon   bool
	sve2   bool
	avx2   bool // with FMA
	avx512 bool // Foundation
}

var (
	features    cpuFeatures
	activeISA   ISA
	hasOverride bool
)

// widestFirst is the search order of selectBestISA. Only one architecture's
// flags are ever set, so mixing them is harmless.
var widestFirst = []ISA{AVX512, SVE2, AVX2, NEON}

func detect() {
	activeISA = resolveISA(os.Getenv("LLOYD_SIMD"))
	bindKernels(activeISA)
}

// resolveISA honours a valid override the CPU supports and otherwise picks
// the widest detected level.
func resolveISA(override string) ISA {
	if isa, ok := ParseISA(override); ok {
		hasOverride = true
		if available(isa) {
			return isa
		}
	}
	return selectBestISA()
}

func available(isa ISA) bool {
	switch isa {
	case Generic:
		return true
	case NEON:
		return features.neon
	case SVE2:
		return features.sve2
	case AVX2:
		return features.avx2
	case AVX512:
		return features.avx512
	default:
		return false
	}
}

func selectBestISA() ISA {
	for _, isa := range widestFirst {
		if available(isa) {
			return isa
		}
	}
	return Generic
}

// ActiveISA returns the level the kernels are bound to.
func ActiveISA() ISA {
	return activeISA
}

// IsOverridden reports whether LLOYD_SIMD named a valid level.
func IsOverridden() bool {
	return hasOverride
}

// Detected lists every level the CPU supports, widest first, ending in Generic.
func Detected() []ISA {
	var out []ISA
	for _, isa := range widestFirst {
		if available(isa) {
			out = append(out, isa)
		}
	}
	return append(out, Generic)
}
