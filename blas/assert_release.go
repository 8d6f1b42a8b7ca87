//go:build !hwyblas_debug

package blas

// assertDims is a no-op in release builds; see assert_debug.go.
func assertDims(string, ...int) {}

const debugAssertions = false
