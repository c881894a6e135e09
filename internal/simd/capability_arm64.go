//go:build arm64

package simd

import "golang.org/x/sys/cpu"

func init() {
	features.neon = cpu.ARM64.HasASIMD
	features.sve2 = cpu.ARM64.HasSVE2
	detect()
}
