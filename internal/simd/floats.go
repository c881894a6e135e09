package simd

var (
	squaredL2Impl      = squaredL2Generic
	squaredL2BatchImpl = squaredL2BatchGeneric
)

// bindKernels binds the kernels whose unroll width matches isa. Independent
// accumulators keep several FMA pipes busy, which the Go compiler does not do
// on its own for a single running sum.
func bindKernels(isa ISA) {
	switch isa.Unroll() {
	case 8:
		squaredL2Impl = squaredL2Unroll8
	case 4:
		squaredL2Impl = squaredL2Unroll4
	default:
		squaredL2Impl = squaredL2Generic
	}
	squaredL2BatchImpl = squaredL2BatchGeneric
}

// SquaredL2 calculates the squared L2 distance.
// Public for use by the distance package.
//
// SAFETY: This function assumes len(a) == len(b).
// Callers MUST ensure lengths match.
func SquaredL2(a, b []float64) float64 {
	return squaredL2Impl(a, b)
}

// SquaredL2Batch calculates squared L2 distances from query to each of the
// flattened targets (N vectors of dimension dim). out must have length N.
func SquaredL2Batch(query []float64, targets []float64, dim int, out []float64) {
	squaredL2BatchImpl(query, targets, dim, out)
}

func squaredL2Generic(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func squaredL2Unroll4(a, b []float64) float64 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3 float64

	i := 0
	for ; i <= n-4; i += 4 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
	}

	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return (s0 + s1) + (s2 + s3)
}

func squaredL2Unroll8(a, b []float64) float64 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3, s4, s5, s6, s7 float64

	i := 0
	for ; i <= n-8; i += 8 {
		d0 := a[i] - b[i]
		d1 := a[i+1] - b[i+1]
		d2 := a[i+2] - b[i+2]
		d3 := a[i+3] - b[i+3]
		d4 := a[i+4] - b[i+4]
		d5 := a[i+5] - b[i+5]
		d6 := a[i+6] - b[i+6]
		d7 := a[i+7] - b[i+7]
		s0 += d0 * d0
		s1 += d1 * d1
		s2 += d2 * d2
		s3 += d3 * d3
		s4 += d4 * d4
		s5 += d5 * d5
		s6 += d6 * d6
		s7 += d7 * d7
	}

	for ; i < n; i++ {
		d := a[i] - b[i]
		s0 += d * d
	}

	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}

func squaredL2BatchGeneric(query []float64, targets []float64, dim int, out []float64) {
	if dim <= 0 || len(out) == 0 || len(query) < dim {
		return
	}

	q := query[:dim]
	n := len(targets) / dim
	if len(out) < n {
		n = len(out)
	}

	for i := 0; i < n; i++ {
		offset := i * dim
		out[i] = squaredL2Impl(q, targets[offset:offset+dim])
	}
}
