//go:build hwyblas_debug

package blas

import "fmt"

// assertDims panics if any dimension is negative.
func assertDims(op string, dims ...int) {
	for _, d := range dims {
		if d < 0 {
			panic(fmt.Sprintf("blas: negative dimension %d in %s", d, op))
		}
	}
}

const debugAssertions = true
