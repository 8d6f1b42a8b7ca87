package vec

// Scalar kernels. They are the whole implementation on non-SIMD builds and
// handle tails and narrow CPUs on SIMD builds. Callers pass equal lengths.

type float interface {
	~float32 | ~float64
}

func scaleScalar[T float](x []T, alpha T) {
	for i := range x {
		x[i] *= alpha
	}
}

func scaleToScalar[T float](dst, x []T, alpha T) {
	for i := range dst {
		dst[i] = alpha * x[i]
	}
}

func axpyScalar[T float](alpha T, x, y []T) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}

func addScalar[T float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subScalar[T float](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func addConstScalar[T float](dst, x []T, c T) {
	for i := range dst {
		dst[i] = c + x[i]
	}
}
