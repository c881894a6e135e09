//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	features.avx2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	features.avx512 = cpu.X86.HasAVX512F
	detect()
}
