//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64 architectures fall back to scalar mode for now.
	// Future implementations will add:
	// - wasm: SIMD128 support
	// - riscv64: Vector extension support
	setScalarMode()
}

// HasAVX2 returns false on non-x86 architectures.
func HasAVX2() bool {
	return false
}
